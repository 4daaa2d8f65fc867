package browse

import (
	"errors"
	"strconv"

	"arcade-catalog/core/catalog"
	"arcade-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/stats", h.HandleStats)
	group.Get("/machines/:name", h.HandleMachine)
	group.Get("/top/:index", h.HandleTop)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, catalog.ErrNoData) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Catalog request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleStats returns the stats report.
// @Summary Catalog Stats
// @Description Returns machine totals, index sizes and the top entries of every index.
// @Tags catalog
// @Produce json
// @Success 200 {object} Report "Stats Report"
// @Failure 409 {object} map[string]string "No data loaded"
// @Router /catalog/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	report, err := h.service.Stats()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleMachine returns one machine.
// @Summary Get Machine
// @Description Returns the full record of one machine, including derived values.
// @Tags catalog
// @Produce json
// @Param name path string true "Machine name"
// @Success 200 {object} catalog.Machine "Machine"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /catalog/machines/{name} [get]
func (h *Handler) HandleMachine(c *fiber.Ctx) error {
	name := c.Params("name")
	m, ok := h.service.Machine(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "machine not found: " + name})
	}
	return c.JSON(m)
}

// HandleTop returns the top entries of an index.
// @Summary Top Entries
// @Description Returns the k highest-count entries of an index, ties ordered by name.
// @Tags catalog
// @Produce json
// @Param index path string true "Index (series, manufacturers, players, languages, categories, subcategories)"
// @Param k query int false "Number of entries" default(10)
// @Success 200 {array} catalog.Entry "Entries"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "No data loaded"
// @Router /catalog/top/{index} [get]
func (h *Handler) HandleTop(c *fiber.Ctx) error {
	k := DefaultTop
	if raw := c.Query("k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "k must be a non-negative integer"})
		}
		k = n
	}

	if _, err := catalog.ParseIndexKind(c.Params("index")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := h.service.Top(c.Params("index"), k)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(entries)
}
