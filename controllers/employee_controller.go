package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/repository"
)

// EmployeeController manages HR records. All routes are admin-only, guarded
// at the route level.
type EmployeeController struct {
	store *repository.MongoStore
}

func NewEmployeeController(store *repository.MongoStore) *EmployeeController {
	return &EmployeeController{store: store}
}

// GET /employees
func (ec *EmployeeController) List(c *fiber.Ctx) error {
	list, err := ec.store.ListEmployees(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if list == nil {
		list = []models.Employee{}
	}
	return c.JSON(list)
}

// GET /employees/:id
func (ec *EmployeeController) Get(c *fiber.Ctx) error {
	e, err := ec.store.EmployeeByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

// POST /employees
func (ec *EmployeeController) Create(c *fiber.Ctx) error {
	var in models.Employee
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if in.Name == "" || in.Position == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name and position are required"})
	}

	in.ID = uuid.NewString()
	if in.Status == "" {
		in.Status = "active"
	}
	in.CreatedAt = time.Now()
	if err := ec.store.CreateEmployee(c.Context(), &in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(in)
}

// PUT /employees/:id
func (ec *EmployeeController) Update(c *fiber.Ctx) error {
	var in models.Employee
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	set := bson.M{}
	if in.Name != "" {
		set["name"] = in.Name
	}
	if in.Position != "" {
		set["position"] = in.Position
	}
	if in.Phone != "" {
		set["phone"] = in.Phone
	}
	if in.Email != "" {
		set["email"] = in.Email
	}
	if in.Salary > 0 {
		set["salary"] = in.Salary
	}
	if in.JoinDate != "" {
		set["join_date"] = in.JoinDate
	}
	if in.Status != "" {
		set["status"] = in.Status
	}
	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "nothing to update"})
	}

	id := c.Params("id")
	if err := ec.store.UpdateEmployee(c.Context(), id, set); err != nil {
		return respondError(c, err)
	}
	e, err := ec.store.EmployeeByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

// DELETE /employees/:id
func (ec *EmployeeController) Delete(c *fiber.Ctx) error {
	if err := ec.store.DeleteEmployee(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "employee deleted"})
}
