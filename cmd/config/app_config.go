package config

import (
	"FarmToFork-Backend/cmd/database/seed"
	"FarmToFork-Backend/internal/api/handlers"
	"FarmToFork-Backend/internal/api/routes"
	"FarmToFork-Backend/internal/middleware"
	"FarmToFork-Backend/internal/utils"
	"FarmToFork-Backend/pkg/batch"
	"FarmToFork-Backend/pkg/dashboard"
	"FarmToFork-Backend/pkg/insight"
	"FarmToFork-Backend/pkg/jwt"
	"FarmToFork-Backend/pkg/ledger"
	"FarmToFork-Backend/pkg/scan"
	"FarmToFork-Backend/pkg/user"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// NewApp wires the portal from the loaded configuration. Call utils.LoadConfig first.
func NewApp() (*fiber.App, error) {
	utils.InitValidator()
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	app := fiber.New(fiber.Config{
		AppName:           "FarmToFork",
		EnablePrintRoutes: utils.GetConfig("LOG_MODE") != "production",
		JSONEncoder:       json.Marshal,
		JSONDecoder:       json.Unmarshal,
	})
	validator := utils.Validate

	// setting up access logging, panics and limiter
	accessLog, err := accessLogOutput(utils.GetConfig("LOG_FILE"))
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     accessLog,
	}))
	if maxPerSecond := utils.GetConfigInt("RATE_LIMIT_MAX", 0); maxPerSecond > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        maxPerSecond,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository()
	batchRepository := batch.NewBatchRepository(nil)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"), jwt.DefaultTokenTTL)
	userService := user.NewUserService(
		userRepository,
		jwtService,
		utils.GetConfig("DEMO_PASSWORD"),
		utils.GetConfigDurationMs("SIMULATED_LATENCY_MS"),
	)
	middlewares := middleware.NewMiddleware(userService)
	ledgerService := ledger.NewLedgerService(zap.L(), utils.GetConfigInt("LEDGER_BUFFER", ledger.DefaultBufferSize), nil)
	insightService := insight.NewInsightService(nil, nil)
	batchService := batch.NewBatchService(batchRepository, ledgerService, insightService)
	scanService := scan.NewScanService(batchRepository, insightService, validator)
	dashboardService := dashboard.NewDashboardService(batchRepository, insightService, ledgerService, nil)

	if utils.GetConfigBool("SEED_DEMO_DATA") {
		if err := seed.Run(context.Background(), batchRepository, batchService, userRepository, time.Now()); err != nil {
			return nil, err
		}
	}

	stopSweeper, err := userService.StartSessionSweeper(user.DefaultSweepSpec)
	if err != nil {
		return nil, eris.Wrap(err, "config: start session sweeper")
	}
	app.Hooks().OnShutdown(func() error {
		stopSweeper()
		_ = zap.L().Sync()
		return nil
	})

	// Handler
	authHandler := handlers.NewAuthHandler(userService, validator)
	batchHandler := handlers.NewBatchHandler(batchService, scanService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, scanService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		AuthHandler:      authHandler,
		BatchHandler:     batchHandler,
		ScanHandler:      scanHandler,
		DashboardHandler: dashboardHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// accessLogOutput writes to stdout, and also to access.log next to the application log
// when a log file is configured.
func accessLogOutput(appLog string) (io.Writer, error) {
	if appLog == "" {
		return os.Stdout, nil
	}
	dir := filepath.Dir(appLog)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, eris.Wrapf(err, "config: create log directory %s", dir)
	}
	return io.MultiWriter(os.Stdout, newRotatingFile(filepath.Join(dir, "access.log"))), nil
}
