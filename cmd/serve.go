package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arcade-catalog/core/catalog"
	"arcade-catalog/core/config"
	"arcade-catalog/core/database"
	"arcade-catalog/core/filter"
	"arcade-catalog/core/loader"
	"arcade-catalog/core/logger"
	"arcade-catalog/core/middleware/auth"
	"arcade-catalog/core/middleware/rayid"
	"arcade-catalog/core/storage"
	"arcade-catalog/feature/browse"
	"arcade-catalog/feature/integrity"
	"arcade-catalog/feature/pipeline"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "arcade-catalog/docs/swagger"
)

// @title Arcade Catalog API
// @version 1.0
// @description Read-only API over the prepared arcade machine catalog.
// @host localhost:8080
// @BasePath /

var serveFilters string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the prepared catalog over HTTP",
	Long: `Builds the catalog once at startup (ingest, filter, normalize) and serves
statistics, machine lookups, top lists and integrity checks.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		a := &session{cfg: cfg, logger: logg}
		if a.paths, err = cfg.Sources.Resolve(); err != nil {
			logg.Fatal("Failed to locate sources", zap.Error(err))
		}

		// 3. Prepare Catalog
		kinds, err := a.filterKinds(serveFilters)
		if err != nil {
			logg.Fatal("Invalid filters", zap.Error(err))
		}
		cat := catalog.New()
		res, err := pipeline.Prepare(cat, a.paths, pipeline.Options{
			Filters: kinds,
			Filter:  filter.Options{Confirmed: true},
		}, logg)
		if err != nil {
			logg.Fatal("Failed to prepare catalog", zap.Error(err))
		}
		logg.Info("Catalog ready", zap.Int("machines", res.Machines), zap.Duration("duration", res.Duration))

		// 4. Optional Dependencies
		opts := integrity.Options{
			Sources:  a.paths,
			Bucket:   cfg.Storage.Bucket,
			Prefix:   cfg.Storage.Prefix,
			Expected: cfg.Export.ExpectedFiles(),
		}
		if cfg.Export.Relational {
			if db, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				opts.DB = db
			}
		}
		if cfg.Export.Publish {
			if client, err := storage.NewClient(cfg.Storage); err != nil {
				logg.Warn("Optional storage client failed", zap.Error(err))
			} else {
				opts.Client = client
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(browse.NewFeature(cat, time.Duration(cfg.Server.StatsCacheSeconds)*time.Second, logg))
		mgr.Register(integrity.NewFeature(opts, logg))

		// RayID first so every log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveFilters, "filters", "", "Comma separated filters (default from config, \"none\" disables)")
}
