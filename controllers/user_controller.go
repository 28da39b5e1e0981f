package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/repository"
	"github.com/Galang0304/kasir-pos-capstone/utils"
)

// UserController manages login accounts. All handlers are admin-only,
// enforced by the route-level role guard.
type UserController struct {
	store *repository.MongoStore
}

func NewUserController(store *repository.MongoStore) *UserController {
	return &UserController{store: store}
}

// GET /users
func (uc *UserController) List(c *fiber.Ctx) error {
	users, err := uc.store.ListUsers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(users)
}

// GET /users/:id
func (uc *UserController) Get(c *fiber.Ctx) error {
	user, err := uc.store.UserByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// POST /users
func (uc *UserController) Create(c *fiber.Ctx) error {
	var body struct {
		Username string      `json:"username"`
		Password string      `json:"password"`
		Name     string      `json:"name"`
		Role     models.Role `json:"role"`
		Email    string      `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if body.Username == "" || body.Password == "" || body.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "username, password and name are required"})
	}
	if !body.Role.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "role must be admin or kasir"})
	}

	hashed, err := utils.HashPassword(body.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to hash password"})
	}
	user := models.User{
		ID:        uuid.NewString(),
		Username:  body.Username,
		Password:  hashed,
		Name:      body.Name,
		Role:      body.Role,
		Email:     body.Email,
		CreatedAt: time.Now(),
	}
	if err := uc.store.CreateUser(c.Context(), &user); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// PUT /users/:id
func (uc *UserController) Update(c *fiber.Ctx) error {
	var body struct {
		Password string      `json:"password"`
		Name     string      `json:"name"`
		Role     models.Role `json:"role"`
		Email    string      `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	set := bson.M{}
	if body.Password != "" {
		hashed, err := utils.HashPassword(body.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to hash password"})
		}
		set["password"] = hashed
	}
	if body.Name != "" {
		set["name"] = body.Name
	}
	if body.Role != "" {
		if !body.Role.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "role must be admin or kasir"})
		}
		set["role"] = body.Role
	}
	if body.Email != "" {
		set["email"] = body.Email
	}
	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "nothing to update"})
	}

	if err := uc.store.UpdateUser(c.Context(), c.Params("id"), set); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "user updated"})
}

// DELETE /users/:id
func (uc *UserController) Delete(c *fiber.Ctx) error {
	if err := uc.store.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "user deleted"})
}
