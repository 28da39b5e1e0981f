package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/repository"
)

type CategoryController struct {
	store *repository.MongoStore
}

func NewCategoryController(store *repository.MongoStore) *CategoryController {
	return &CategoryController{store: store}
}

// GET /categories
func (cc *CategoryController) List(c *fiber.Ctx) error {
	list, err := cc.store.ListCategories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if list == nil {
		list = []models.Category{}
	}
	return c.JSON(list)
}

// GET /categories/:id
func (cc *CategoryController) Get(c *fiber.Ctx) error {
	cat, err := cc.store.CategoryByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cat)
}

// POST /categories
func (cc *CategoryController) Create(c *fiber.Ctx) error {
	var in models.Category
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name is required"})
	}

	in.ID = uuid.NewString()
	in.CreatedAt = time.Now()
	if err := cc.store.CreateCategory(c.Context(), &in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(in)
}

// PUT /categories/:id
func (cc *CategoryController) Update(c *fiber.Ctx) error {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	set := bson.M{}
	if body.Name != "" {
		set["name"] = body.Name
	}
	if body.Description != "" {
		set["description"] = body.Description
	}
	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "nothing to update"})
	}

	if err := cc.store.UpdateCategory(c.Context(), c.Params("id"), set); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "category updated"})
}

// DELETE /categories/:id
func (cc *CategoryController) Delete(c *fiber.Ctx) error {
	if err := cc.store.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "category deleted"})
}
