package integrity

import (
	"arcade-catalog/core/logger"
	"arcade-catalog/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/sources", h.HandleSourcesCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/published", h.HandlePublishedCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Sources, Schema, Published).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	statuses := h.service.CheckSources()
	report["sources"] = fiber.Map{"ready": checks.SourcesReady(statuses), "files": statuses}

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if missing, err := h.service.CheckPublished(c.Context()); err != nil {
		report["published"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["published"] = fiber.Map{"status": "ok", "missing": missing}
	}

	return c.JSON(report)
}

// HandleSourcesCheck checks the input files.
// @Summary Check Source Files
// @Description Reports which source files were located and whether the required MAME catalog is present.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Sources Report"
// @Router /integrity/sources [get]
func (h *Handler) HandleSourcesCheck(c *fiber.Ctx) error {
	statuses := h.service.CheckSources()
	ready := checks.SourcesReady(statuses)
	if !ready {
		logger.WithRayID(h.service.logger, c).Warn("Required source missing")
	}
	return c.JSON(fiber.Map{
		"ready": ready,
		"files": statuses,
	})
}

// HandleSchemaCheck checks the relational export schema.
// @Summary Check Export Schema
// @Description Checks if the export database schema matches the expected models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandlePublishedCheck checks the published export files.
// @Summary Check Published Export
// @Description Verify that every export file is present in the storage bucket.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Published Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/published [get]
func (h *Handler) HandlePublishedCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckPublished(c.Context())
	if err != nil {
		l.Error("Published check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(missing) > 0 {
		l.Warn("Published export incomplete", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}
