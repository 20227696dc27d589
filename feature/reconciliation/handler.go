package reconciliation

import (
	"arche-openrefine/core/apierror"
	"arche-openrefine/core/logger"
	"arche-openrefine/core/protocol"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the reconciliation API.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.All("/reconcile", h.HandleReconcile)
	app.Get("/preview", h.HandlePreview)
	if h.service.config.Extended() {
		app.Get("/properties", h.HandleProperties)
	}
}

// HandleReconcile serves the manifest, a query batch or a data extension.
// @Summary Reconcile
// @Description Without parameters returns the service manifest. With `queries` runs a batch of match queries, with `extend` fetches property values.
// @Tags reconciliation
// @Accept x-www-form-urlencoded
// @Produce json
// @Param queries query string false "JSON object mapping query ids to queries"
// @Param extend query string false "JSON data extension request"
// @Success 200 {object} map[string]interface{} "Manifest, batch result or extension result"
// @Failure 400 {string} string "Bad request"
// @Failure 500 {string} string "Internal Server Error"
// @Router /reconcile [get]
// @Router /reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req, err := protocol.ParseReconcile(c, h.service.config.Trigger(), h.service.config.Extended(), h.service.profile)
	if err != nil {
		return err
	}
	l.Debug("Reconcile request parsed", zap.String("operation", req.Operation()))

	switch r := req.(type) {
	case protocol.ManifestRequest:
		return c.JSON(h.service.Manifest())
	case protocol.ExtendRequest:
		resp, err := h.service.Extend(c.UserContext(), r)
		if err != nil {
			return apierror.Internal("Data extension failed", err)
		}
		return c.JSON(resp)
	case protocol.BatchRequest:
		resp, err := h.service.Reconcile(c.UserContext(), r)
		if err != nil {
			return apierror.Internal("Reconciliation failed", err)
		}
		l.Info("Reconciliation batch completed", zap.Int("queries", len(r.Queries)))
		return c.JSON(resp)
	default:
		return apierror.NotFound("Unsupported operation " + req.Operation())
	}
}

// HandleProperties proposes extend properties for a type.
// @Summary Propose Properties
// @Description Lists the extend properties applicable to a type (by id or name).
// @Tags reconciliation
// @Produce json
// @Param type query string false "Type id or name"
// @Param limit query int false "Maximum number of properties"
// @Success 200 {object} ProposalResponse "Property proposal"
// @Router /properties [get]
func (h *Handler) HandleProperties(c *fiber.Ctx) error {
	return c.JSON(h.service.ProposeProperties(protocol.ParseProposal(c)))
}

// HandlePreview redirects to the entity metadata page.
// @Summary Preview
// @Description Redirects to the preview page of an entity.
// @Tags reconciliation
// @Param id query string true "Entity id"
// @Success 302
// @Router /preview [get]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	return c.Redirect(h.service.PreviewURL(protocol.ParsePreview(c)), fiber.StatusFound)
}
