package handlers

import (
	"bistro/internal/middleware"
	"bistro/internal/models"
	"bistro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service     *services.UserService
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		service:     service,
		authService: authService,
	}
}

// RegisterRoutes registers the user routes.
// DELETE and PUT check neither ownership nor role beyond what is listed here.
func (h *UserHandler) RegisterRoutes(router fiber.Router, g Guards) {
	users := router.Group("/users")
	users.Get("/", g.Verify, g.Admin, h.HandleGetUsers)
	users.Get("/admin/:email", g.Verify, middleware.SelfOnly("email"), h.HandleGetAdminFlag)
	users.Post("/", h.HandleCreateUser)
	users.Delete("/:id", g.Verify, g.Admin, h.HandleDeleteUser)
	users.Put("/:id", h.HandleUpdateUser)
	users.Patch("/admin/:id", g.Verify, g.Admin, h.HandleMakeAdmin)
}

// CreateUserRequest is the registration body.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"omitempty,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
	Photo string `json:"photo"`
}

// UpdateUserRequest is the replace body. Empty fields are left unchanged.
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"omitempty,max=255"`
	Email string `json:"email" validate:"omitempty,email,max=255"`
	Photo string `json:"photo"`
}

// HandleGetUsers lists every user.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.UserContext())
	if err != nil {
		return storeFailure(c, "Could not retrieve users", err)
	}
	return c.JSON(users)
}

// HandleGetAdminFlag tells the caller whether their own account is an admin.
func (h *UserHandler) HandleGetAdminFlag(c *fiber.Ctx) error {
	isAdmin, err := h.authService.IsAdmin(c.UserContext(), middleware.IdentityEmail(c))
	if err != nil {
		return storeFailure(c, "Could not retrieve user", err)
	}
	return c.JSON(fiber.Map{
		"admin": isAdmin,
	})
}

// HandleCreateUser registers a user unless the email is already taken.
// A duplicate is answered with 200 and a message, not an error status.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	user := &models.User{Name: req.Name, Email: req.Email, Photo: req.Photo}
	result, created, err := h.service.RegisterUser(c.UserContext(), user)
	if err != nil {
		return storeFailure(c, "Could not register user", err)
	}
	if !created {
		return c.JSON(fiber.Map{
			"message":    "User already exists",
			"insertedId": nil,
		})
	}
	return c.JSON(result)
}

// HandleDeleteUser deletes a user by id.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	result, err := h.service.DeleteUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return storeFailure(c, "Could not delete user", err)
	}
	return c.JSON(result)
}

// HandleUpdateUser overwrites the provided fields of a user.
// Moving a user onto an email held by someone else is refused like a duplicate registration.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	changes := &models.User{Name: req.Name, Email: req.Email, Photo: req.Photo}
	result, updated, err := h.service.UpdateUser(c.UserContext(), c.Params("id"), changes)
	if err != nil {
		return storeFailure(c, "Could not update user", err)
	}
	if !updated {
		return c.JSON(fiber.Map{
			"message":       "User already exists",
			"modifiedCount": 0,
		})
	}
	return c.JSON(result)
}

// HandleMakeAdmin promotes a user to admin.
func (h *UserHandler) HandleMakeAdmin(c *fiber.Ctx) error {
	result, err := h.service.MakeAdmin(c.UserContext(), c.Params("id"))
	if err != nil {
		return storeFailure(c, "Could not update user role", err)
	}
	return c.JSON(result)
}
