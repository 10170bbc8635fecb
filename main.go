package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/vitoraqdev/SalesOrderManagement/configs/databaseconfig"
	"github.com/vitoraqdev/SalesOrderManagement/configs/envconfig"
	"github.com/vitoraqdev/SalesOrderManagement/configs/logconfig"
	"github.com/vitoraqdev/SalesOrderManagement/database/seeders"
	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/routes"
)

func main() {
	envconfig.LoadIfDev()

	logconfig.InitLogger()
	defer logconfig.SyncLogger()

	appEnv := envconfig.String("APP_ENV", "development")
	logconfig.SLog.Infow("Runtime",
		"env", appEnv,
		"num_cpu", runtime.NumCPU(),
		"gomaxprocs", runtime.GOMAXPROCS(0),
	)

	db, err := databaseconfig.Connect(databaseconfig.FromEnv())
	if err != nil {
		logconfig.Log.Fatal("Could not connect to database", zap.Error(err))
	}
	defer databaseconfig.Close(db)

	if err := models.Migrate(db); err != nil {
		logconfig.Log.Fatal("Migration failed", zap.Error(err))
	}

	if envconfig.Bool("SEED_DATA", false) {
		if err := seeders.SeedNeighborhoods(db); err != nil {
			logconfig.Log.Fatal("Neighborhood seeding failed", zap.Error(err))
		}
		if err := seeders.SeedItems(db); err != nil {
			logconfig.Log.Fatal("Catalog seeding failed", zap.Error(err))
		}
	}

	app := fiber.New(fiber.Config{
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,

		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			if code >= fiber.StatusInternalServerError {
				logconfig.Log.Error("Fiber request error",
					zap.Error(err),
					zap.Int("status_code", code),
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
					zap.String("ip", c.IP()),
				)
			}
			return c.Status(code).SendString(message)
		},
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		dbOk := err == nil && sqlDB.PingContext(c.Context()) == nil

		status := fiber.StatusOK
		if !dbOk {
			status = fiber.StatusServiceUnavailable
		}

		return c.Status(status).JSON(fiber.Map{
			"ok":        dbOk,
			"database":  dbOk,
			"timestamp": time.Now().Unix(),
		})
	})

	app.Use(recover.New())

	// Baseline maps constraint violations to 500; flip this on to report
	// them as 400 instead.
	strict := envconfig.Bool("STRICT_CLIENT_ERRORS", false)
	routes.SetupRoutes(app, db, strict)

	startServer(app)
}

func startServer(app *fiber.App) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := envconfig.Int("APP_PORT", 8000)
	host := envconfig.String("APP_HOST", "127.0.0.1")
	address := host + ":" + strconv.Itoa(port)

	go func() {
		logconfig.SLog.Infow("Listening",
			"env", envconfig.String("APP_ENV", "development"),
			"listen", address,
		)
		if err := app.Listen(address); err != nil {
			logconfig.Log.Fatal("Server could not listen", zap.String("address", address), zap.Error(err))
		}
	}()

	<-ctx.Done()
	logconfig.Log.Info("Shutdown signal received, stopping...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logconfig.Log.Error("Server shutdown failed", zap.Error(err))
	} else {
		logconfig.Log.Info("Server stopped cleanly")
	}
}
