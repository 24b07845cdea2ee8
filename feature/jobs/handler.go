package jobs

import (
	"cts/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the read-only job board API.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the job board routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/companies", h.HandleCompanies)

	group := app.Group("/postings")
	group.Get("/", h.HandlePostings)
	group.Get("/export.csv", h.HandleExport)
}

// HandleCompanies lists every company.
func (h *Handler) HandleCompanies(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	companies, err := h.service.Companies(c.Context())
	if err != nil {
		l.Error("Listing companies failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"count":     len(companies),
		"companies": companies,
	})
}

// HandlePostings lists every posting joined with its company.
func (h *Handler) HandlePostings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rows, err := h.service.Postings(c.Context())
	if err != nil {
		l.Error("Listing postings failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"count":    len(rows),
		"postings": rows,
	})
}

// HandleExport streams the CSV export.
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	data, err := h.service.RenderCSV(c.Context())
	if err != nil {
		l.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="postings.csv"`)
	return c.Send(data)
}
