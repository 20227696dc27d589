package cmd

import (
	"context"
	"fmt"

	"arche-openrefine/core/config"
	"arche-openrefine/core/database"
	"arche-openrefine/core/logger"
	"arche-openrefine/core/profile"
	"arche-openrefine/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every command needs.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	profile *profile.Profile
}

// bootstrap loads the configuration, the logger, the profile and, when
// withDB is set, the database connection. The profile is read before
// connecting so a broken profile fails fast.
func bootstrap(ctx context.Context, withDB bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	p, err := profile.Load(ctx, cfg.Profile, cfg.Storage.Bucket, func() (storage.Client, error) {
		return storage.NewClient(cfg.Storage)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	logg.Info("Profile loaded",
		zap.String("name", p.Name),
		zap.Int("types", len(p.Types)),
		zap.Int("properties", len(p.Properties)))

	if !withDB {
		return &runtime{cfg: cfg, logger: logg, profile: p}, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logg = logg.With(zap.String("driver", cfg.Database.Driver))
	logg.Info("Connected to database")

	return &runtime{cfg: cfg, logger: logg, db: db, profile: p}, nil
}
