package integrity

import (
	"context"

	"arche-openrefine/core/profile"
	"arche-openrefine/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db      *gorm.DB
	profile *profile.Profile
	logger  *zap.Logger
}

// NewService creates a new integrity service.
func NewService(db *gorm.DB, p *profile.Profile, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		profile: p,
		logger:  logger,
	}
}

// CheckDatastore compares the datastore tables with the expected columns.
func (s *Service) CheckDatastore(ctx context.Context) (*checks.DatastoreReport, error) {
	return checks.CheckDatastore(ctx, s.db)
}

// CheckProfile reports profile types and properties without data.
func (s *Service) CheckProfile(ctx context.Context) (*checks.ProfileReport, error) {
	return checks.CheckProfile(ctx, s.db, s.profile)
}

// CheckAll runs every check. A failing check is reported in place and does
// not abort the others.
func (s *Service) CheckAll(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if ds, err := s.CheckDatastore(ctx); err != nil {
		s.logger.Error("Datastore check failed", zap.Error(err))
		report["datastore"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["datastore"] = ds
	}

	if pr, err := s.CheckProfile(ctx); err != nil {
		s.logger.Error("Profile check failed", zap.Error(err))
		report["profile"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["profile"] = pr
	}

	return report
}
