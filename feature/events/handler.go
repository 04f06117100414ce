package events

import (
	"strconv"

	"github.com/mangelajo/musicevents/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the event catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/events", h.HandleListEvents)
	app.Get("/events/:id", h.HandleGetEvent)
	app.Get("/venues", h.HandleListVenues)
	app.Get("/artists", h.HandleListArtists)
}

// HandleListEvents returns every synced event ordered by date.
func (h *Handler) HandleListEvents(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	events, err := h.service.ListEvents()
	if err != nil {
		l.Error("Listing events failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(events)
}

// HandleGetEvent returns one event by ID.
func (h *Handler) HandleGetEvent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid event id",
		})
	}

	event, err := h.service.GetEvent(uint(id))
	if err != nil {
		l.Error("Fetching event failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if event == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "event not found",
		})
	}
	return c.JSON(event)
}

// HandleListVenues returns every venue ordered by name.
func (h *Handler) HandleListVenues(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	venues, err := h.service.ListVenues()
	if err != nil {
		l.Error("Listing venues failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(venues)
}

// HandleListArtists returns every artist ordered by name.
func (h *Handler) HandleListArtists(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	artists, err := h.service.ListArtists()
	if err != nil {
		l.Error("Listing artists failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(artists)
}
