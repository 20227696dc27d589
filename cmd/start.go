package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"arche-openrefine/core/apierror"
	"arche-openrefine/core/loader"
	"arche-openrefine/core/logger"
	"arche-openrefine/core/middleware/cors"
	"arche-openrefine/core/middleware/rayid"

	"arche-openrefine/feature/integrity"
	"arche-openrefine/feature/reconciliation"
	"arche-openrefine/feature/suggest"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "arche-openrefine/docs/swagger"
)

// @title ARCHE OpenRefine Reconciliation API
// @version 1.0
// @description OpenRefine reconciliation service over a metadata repository.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(context.Background(), true)
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		cfg := rt.cfg
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			ErrorHandler:          apierror.Handler(cfg.Server.Debug, logg),
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(reconciliation.NewFeature(rt.db, rt.profile, cfg.Server, logg))
		mgr.Register(suggest.NewFeature(rt.db, rt.profile, cfg.Server.SuggestLimit, logg))
		mgr.Register(integrity.NewFeature(rt.db, rt.profile, logg))

		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			return c.Next()
		})

		// 3. CORS
		app.Use(cors.New(cfg.Server.Cors))

		app.Get("/swagger/*", swagger.HandlerDefault)

		base := app.Group(cfg.Server.BasePath())
		if err := mgr.LoadAll(base); err != nil {
			logg.Error("Failed to load features", zap.Error(err))
			return err
		}
		app.Use(apierror.NotFoundHandler(cfg.Server.ManifestURL()))

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("base_url", cfg.Server.ServiceURL()),
				zap.String("variant", cfg.Server.APIVariant))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
