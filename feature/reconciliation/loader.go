package reconciliation

import (
	"arche-openrefine/core/profile"
	"arche-openrefine/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new reconciliation feature.
func NewFeature(db *gorm.DB, p *profile.Profile, cfg server.Config, logger *zap.Logger) *Feature {
	svc := NewService(db, p, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "reconciliation"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service to the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
