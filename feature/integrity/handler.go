package integrity

import (
	"arche-openrefine/core/apierror"
	"arche-openrefine/core/logger"
	"arche-openrefine/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.DatastoreReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/datastore", h.HandleDatastoreCheck)
	group.Get("/profile", h.HandleProfileCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the datastore and profile checks.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.CheckAll(c.UserContext()))
}

// HandleDatastoreCheck checks the datastore tables.
// @Summary Check Datastore
// @Description Checks that the metadata, identifiers and full_text_search tables expose the expected columns.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DatastoreReport "Datastore Report"
// @Failure 500 {string} string "Internal Server Error"
// @Router /integrity/datastore [get]
func (h *Handler) HandleDatastoreCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting datastore check")

	report, err := h.service.CheckDatastore(c.UserContext())
	if err != nil {
		return apierror.Internal("Datastore check failed", err)
	}
	if !report.Matched {
		l.Warn("Datastore does not match the expected tables", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}

// HandleProfileCheck checks the profile catalog against the datastore.
// @Summary Check Profile
// @Description Lists catalog types without entities and extend properties without values.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.ProfileReport "Profile Report"
// @Failure 500 {string} string "Internal Server Error"
// @Router /integrity/profile [get]
func (h *Handler) HandleProfileCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting profile check")

	report, err := h.service.CheckProfile(c.UserContext())
	if err != nil {
		return apierror.Internal("Profile check failed", err)
	}
	if !report.Matched {
		l.Warn("Profile entries without data",
			zap.Strings("types", report.EmptyTypes),
			zap.Strings("properties", report.EmptyProperties))
	}
	return c.JSON(report)
}
