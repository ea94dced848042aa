package handlers

import (
	"bistro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	service *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// RegisterRoutes registers the stats route behind the admin gate.
func (h *StatsHandler) RegisterRoutes(router fiber.Router, g Guards) {
	router.Get("/admin-stats", g.Verify, g.Admin, h.HandleGetStats)
}

// HandleGetStats returns user, menu and order counts and total revenue.
func (h *StatsHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.UserContext())
	if err != nil {
		return storeFailure(c, "Could not compute stats", err)
	}
	return c.JSON(stats)
}
