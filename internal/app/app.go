// Package app wires repositories, services, and handlers into a Fiber
// application. Construction is explicit so main and the tests share the
// same wiring.
package app

import (
	"go-labstock/internal/config"
	"go-labstock/internal/handler"
	"go-labstock/internal/middleware"
	"go-labstock/internal/news"
	"go-labstock/internal/pubchem"
	"go-labstock/internal/repository"
	"go-labstock/internal/service"
	"go-labstock/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Build assembles the full application. hub may be nil when websockets
// are not wanted (tests).
func Build(db *gorm.DB, cfg *config.Config, hub *ws.Hub) *fiber.App {
	// Repositories
	userRepo := repository.NewUserRepo(db)
	reagentRepo := repository.NewReagentRepo(db)
	requestRepo := repository.NewRequestRepo(db)
	wasteRepo := repository.NewWasteRepo(db)

	// Services
	authService := service.NewAuthService(userRepo)
	reagentService := service.NewReagentService(reagentRepo, requestRepo, pubchem.NewClient(cfg.PubChemURL))
	requestService := service.NewRequestService(requestRepo, reagentRepo, db, hub)
	wasteService := service.NewWasteService(wasteRepo, db, hub)
	dashService := service.NewDashboardService(reagentRepo, requestRepo, wasteRepo)
	userService := service.NewUserService(userRepo)
	newsService := news.NewService(cfg.NewsFeedURL)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	reagentHandler := handler.NewReagentHandler(reagentService)
	requestHandler := handler.NewRequestHandler(requestService)
	wasteHandler := handler.NewWasteHandler(wasteService)
	dashHandler := handler.NewDashboardHandler(dashService)
	userHandler := handler.NewUserHandler(userService)
	newsHandler := handler.NewNewsHandler(newsService)

	app := fiber.New(fiber.Config{
		AppName: "LabStock API v1.0",
	})

	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())
	admin := middleware.RequireAdmin()

	// Reagent routes (mutations are admin-only)
	protected.Get("/reagents", reagentHandler.List)
	protected.Get("/reagents/:id", reagentHandler.Get)
	protected.Post("/reagents", admin, reagentHandler.Create)
	protected.Put("/reagents/:id", admin, reagentHandler.Update)
	protected.Delete("/reagents/:id", admin, reagentHandler.Delete)

	// Request routes (status decisions are admin-only)
	protected.Post("/requests", requestHandler.Create)
	protected.Get("/requests", requestHandler.List)
	protected.Get("/requests/:id", requestHandler.Get)
	protected.Patch("/requests/:id/status", admin, requestHandler.UpdateStatus)

	// Waste routes (container mutations are admin-only)
	protected.Get("/waste/containers", wasteHandler.ListContainers)
	protected.Post("/waste/containers", admin, wasteHandler.CreateContainer)
	protected.Put("/waste/containers/:id", admin, wasteHandler.UpdateContainer)
	protected.Delete("/waste/containers/:id", admin, wasteHandler.DeleteContainer)
	protected.Get("/waste/logs", wasteHandler.ListLogs)
	protected.Post("/waste/logs", wasteHandler.CreateLog)

	// Dashboard and news
	protected.Get("/dashboard/stats", dashHandler.GetStats)
	protected.Get("/news", newsHandler.List)

	// User management (admin-only)
	protected.Get("/users", admin, userHandler.List)
	protected.Post("/users", admin, userHandler.Create)
	protected.Delete("/users/:id", admin, userHandler.Delete)

	// WebSocket route for live stock/waste events
	if hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws", websocket.New(func(c *websocket.Conn) {
			hub.Register <- c
			defer func() { hub.Unregister <- c }()

			for {
				// Keep alive loop
				if _, _, err := c.ReadMessage(); err != nil {
					break
				}
			}
		}))
	}

	return app
}
