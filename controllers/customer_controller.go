package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/repository"
)

type CustomerController struct {
	store *repository.MongoStore
}

func NewCustomerController(store *repository.MongoStore) *CustomerController {
	return &CustomerController{store: store}
}

// GET /customers?search=
func (cc *CustomerController) List(c *fiber.Ctx) error {
	list, err := cc.store.ListCustomers(c.Context(), c.Query("search", ""))
	if err != nil {
		return respondError(c, err)
	}
	if list == nil {
		list = []models.Customer{}
	}
	return c.JSON(list)
}

// GET /customers/:id also returns the customer's transaction history.
func (cc *CustomerController) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	customer, err := cc.store.CustomerByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	transactions, err := cc.store.ListTransactions(c.Context(), models.TransactionFilter{CustomerID: id})
	if err != nil {
		return respondError(c, err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return c.JSON(fiber.Map{
		"id":           customer.ID,
		"name":         customer.Name,
		"phone":        customer.Phone,
		"email":        customer.Email,
		"address":      customer.Address,
		"points":       customer.Points,
		"total_spent":  customer.TotalSpent,
		"visit_count":  customer.VisitCount,
		"created_at":   customer.CreatedAt,
		"transactions": transactions,
	})
}

// POST /customers
func (cc *CustomerController) Create(c *fiber.Ctx) error {
	var in models.Customer
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name is required"})
	}

	// New customers always start with zeroed aggregates; only checkout
	// moves them.
	customer := models.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := cc.store.CreateCustomer(c.Context(), &customer); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// PUT /customers/:id updates contact fields only; loyalty aggregates are
// owned by the checkout path.
func (cc *CustomerController) Update(c *fiber.Ctx) error {
	var body struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Address string `json:"address"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	set := bson.M{}
	if body.Name != "" {
		set["name"] = body.Name
	}
	if body.Phone != "" {
		set["phone"] = body.Phone
	}
	if body.Email != "" {
		set["email"] = body.Email
	}
	if body.Address != "" {
		set["address"] = body.Address
	}
	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "nothing to update"})
	}

	id := c.Params("id")
	if err := cc.store.UpdateCustomer(c.Context(), id, set); err != nil {
		return respondError(c, err)
	}
	customer, err := cc.store.CustomerByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// DELETE /customers/:id
func (cc *CustomerController) Delete(c *fiber.Ctx) error {
	if err := cc.store.DeleteCustomer(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "customer deleted"})
}
