package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/repository"
)

type ProductController struct {
	store *repository.MongoStore
}

func NewProductController(store *repository.MongoStore) *ProductController {
	return &ProductController{store: store}
}

// GET /products?category=&search=
func (pc *ProductController) List(c *fiber.Ctx) error {
	list, err := pc.store.ListProducts(c.Context(), c.Query("category", ""), c.Query("search", ""))
	if err != nil {
		return respondError(c, err)
	}
	if list == nil {
		list = []models.Product{}
	}
	return c.JSON(list)
}

// GET /products/:id
func (pc *ProductController) Get(c *fiber.Ctx) error {
	p, err := pc.store.ProductByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// POST /products
func (pc *ProductController) Create(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if in.Name == "" || in.SKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name and sku are required"})
	}
	if in.Price < 0 || in.Stock < 0 || in.MinStock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price, stock and min_stock must not be negative"})
	}

	p := models.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		CategoryID:  in.CategoryID,
		SKU:         in.SKU,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		CreatedAt:   time.Now(),
	}
	if err := pc.store.CreateProduct(c.Context(), &p); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /products/:id accepts a partial payload; omitted fields keep their
// stored values.
func (pc *ProductController) Update(c *fiber.Ctx) error {
	var in models.ProductUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	id := c.Params("id")
	if err := pc.store.UpdateProduct(c.Context(), id, in); err != nil {
		return respondError(c, err)
	}
	p, err := pc.store.ProductByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// DELETE /products/:id
func (pc *ProductController) Delete(c *fiber.Ctx) error {
	if err := pc.store.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}
