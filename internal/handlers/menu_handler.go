package handlers

import (
	"errors"
	"fmt"

	"bistro/internal/models"
	"bistro/internal/repositories"
	"bistro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MenuHandler handles HTTP requests for the menu.
type MenuHandler struct {
	service *services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{
		service: service,
	}
}

// RegisterRoutes registers the menu routes. Reads are public, writes need an admin.
func (h *MenuHandler) RegisterRoutes(router fiber.Router, g Guards) {
	menu := router.Group("/menu")
	menu.Get("/", h.HandleGetMenu)
	menu.Get("/:id", h.HandleGetMenuItem)
	menu.Post("/", g.Verify, g.Admin, h.HandleCreateMenuItem)
	menu.Patch("/:id", g.Verify, g.Admin, h.HandleUpdateMenuItem)
	menu.Delete("/:id", g.Verify, g.Admin, h.HandleDeleteMenuItem)
}

// MenuItemRequest is the body for creating a menu item.
type MenuItemRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category" validate:"required,max=64"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// MenuItemPatch is the body for updating a menu item. Absent fields are left unchanged.
type MenuItemPatch struct {
	Name     *string  `json:"name" validate:"omitempty,max=255"`
	Recipe   *string  `json:"recipe"`
	Image    *string  `json:"image"`
	Category *string  `json:"category" validate:"omitempty,max=64"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
}

func (p *MenuItemPatch) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Recipe != nil {
		fields["recipe"] = *p.Recipe
	}
	if p.Image != nil {
		fields["image"] = *p.Image
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	return fields
}

// HandleGetMenu lists the whole menu.
func (h *MenuHandler) HandleGetMenu(c *fiber.Ctx) error {
	items, err := h.service.GetMenu(c.UserContext())
	if err != nil {
		return storeFailure(c, "Could not retrieve menu", err)
	}
	return c.JSON(items)
}

// HandleGetMenuItem retrieves a single menu item by its ID.
func (h *MenuHandler) HandleGetMenuItem(c *fiber.Ctx) error {
	id := c.Params("id")
	item, err := h.service.GetMenuItem(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Menu item with ID %s not found", id),
			})
		}
		return storeFailure(c, "Could not retrieve menu item", err)
	}
	return c.JSON(item)
}

// HandleCreateMenuItem adds a menu item.
func (h *MenuHandler) HandleCreateMenuItem(c *fiber.Ctx) error {
	var req MenuItemRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	item := &models.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	}
	result, err := h.service.AddMenuItem(c.UserContext(), item)
	if err != nil {
		return storeFailure(c, "Could not create menu item", err)
	}
	return c.JSON(result)
}

// HandleUpdateMenuItem updates the provided fields of a menu item.
func (h *MenuHandler) HandleUpdateMenuItem(c *fiber.Ctx) error {
	var req MenuItemPatch
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	result, err := h.service.UpdateMenuItem(c.UserContext(), c.Params("id"), req.fields())
	if err != nil {
		return storeFailure(c, "Could not update menu item", err)
	}
	return c.JSON(result)
}

// HandleDeleteMenuItem deletes a menu item.
func (h *MenuHandler) HandleDeleteMenuItem(c *fiber.Ctx) error {
	result, err := h.service.DeleteMenuItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return storeFailure(c, "Could not delete menu item", err)
	}
	return c.JSON(result)
}
