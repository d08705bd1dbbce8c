package routes

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/internal/api/handlers"
	"FarmToFork-Backend/internal/middleware"
	"FarmToFork-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	AuthHandler      handlers.AuthHandler
	BatchHandler     handlers.BatchHandler
	ScanHandler      handlers.ScanHandler
	DashboardHandler handlers.DashboardHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Batches()
	c.Scan()
	c.Dashboard()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/login", c.AuthHandler.Login)
		auth.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Logout)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Me)
	}
}

func (c *Config) Batches() {
	batches := c.App.Group("/api/v1/batches", c.Middleware.AuthMiddleware(c.JWTService))

	batches.Get("", c.BatchHandler.GetBatches)
	batches.Post("", c.Middleware.RoleMiddleware(domain.RoleFarmer), c.BatchHandler.CreateBatch)
	batches.Get("/:id", c.BatchHandler.GetBatchByID)
	batches.Get("/:id/insights", c.BatchHandler.GetBatchInsights)
	batches.Get("/:id/qr", c.BatchHandler.GetBatchQR)

	// Custody changes
	batches.Post("/:id/transfer",
		c.Middleware.RoleMiddleware(domain.RoleFarmer, domain.RoleDistributor, domain.RoleRetailer),
		c.BatchHandler.TransferBatch,
	)
	batches.Patch("/:id/status",
		c.Middleware.RoleMiddleware(domain.RoleDistributor, domain.RoleRetailer, domain.RoleRegulator),
		c.BatchHandler.UpdateBatchStatus,
	)
}

func (c *Config) Scan() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	c.App.Post("/api/v1/scan/decode", auth, c.ScanHandler.DecodeScan)
	c.App.Get("/api/v1/profile/qr", auth, c.ScanHandler.GetProfileQR)
}

func (c *Config) Dashboard() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	c.App.Get("/api/v1/dashboard", auth, c.DashboardHandler.GetDashboard)
	c.App.Get("/api/v1/reports/regulator",
		auth,
		c.Middleware.RoleMiddleware(domain.RoleRegulator),
		c.DashboardHandler.GetRegulatorReport,
	)
}
