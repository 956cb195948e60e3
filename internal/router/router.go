package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/eduonboard-api/internal/config"
	"github.com/noah-isme/eduonboard-api/internal/handler"
	"github.com/noah-isme/eduonboard-api/internal/middleware"
	"github.com/noah-isme/eduonboard-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	TaskHandler         *handler.TaskHandler
	DocumentHandler     *handler.DocumentHandler
	NotificationHandler *handler.NotificationHandler
	SessionHandler      *handler.SessionHandler
	AssistantHandler    *handler.AssistantHandler
	AdminHandler        *handler.AdminHandler
	TicketHandler       *handler.TicketHandler
	SeedHandler         *handler.SeedHandler
	JWTMiddleware       fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	// Common v1 group for health & headers
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Student portal
	student := app.Group("/api/v2/student", jwtMiddleware, middleware.RequireRole("student", "admin"))
	if deps.TaskHandler != nil {
		deps.TaskHandler.Register(student.Group("/tasks"))
	}
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.Register(student.Group("/documents"))
	}
	if deps.NotificationHandler != nil {
		deps.NotificationHandler.Register(student.Group("/notifications"))
	}
	if deps.SessionHandler != nil {
		deps.SessionHandler.Register(student)
	}

	// Helpdesk assistant
	if deps.AssistantHandler != nil {
		assistant := app.Group("/api/v2/assistant",
			jwtMiddleware,
			middleware.RequireRole("student", "admin"),
			middleware.RateLimit("assistant", 20, time.Minute),
		)
		deps.AssistantHandler.Register(assistant)
	}

	// Staff dashboard
	admin := app.Group("/api/v2/admin", jwtMiddleware, middleware.RequireRole("admin"))
	if deps.AdminHandler != nil {
		deps.AdminHandler.Register(admin)
	}
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterAdmin(admin.Group("/documents"))
	}
	if deps.TicketHandler != nil {
		deps.TicketHandler.Register(admin.Group("/tickets"))
	}
	if deps.SeedHandler != nil {
		deps.SeedHandler.Register(admin.Group("/seed"))
	}
}
