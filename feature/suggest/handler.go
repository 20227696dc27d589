package suggest

import (
	"arche-openrefine/core/logger"
	"arche-openrefine/core/protocol"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for typeahead suggestions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the suggest routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/suggest/:kind", h.HandleSuggest)
}

// HandleSuggest serves entity and type suggestions.
// @Summary Suggest
// @Description Typeahead lookup. `entity` searches identifiers and names, `type` the type catalog. `property` is not supported.
// @Tags suggest
// @Produce json
// @Param kind path string true "entity, type or property"
// @Param prefix query string false "Typed prefix"
// @Param cursor query int false "Number of results to skip (entity only)"
// @Success 200 {object} map[string]interface{} "Suggestions"
// @Failure 404 {string} string "Unsupported suggest type"
// @Router /suggest/{kind} [get]
func (h *Handler) HandleSuggest(c *fiber.Ctx) error {
	req := protocol.ParseSuggest(c)
	logger.WithRayID(h.service.logger, c).Debug("Suggest request",
		zap.String("operation", req.Operation()),
		zap.String("prefix", req.Prefix),
		zap.Int("cursor", req.Cursor))

	resp, err := h.service.Suggest(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
