package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/lms-go-api/internal/config"
	"github.com/noah-isme/lms-go-api/internal/handler"
	"github.com/noah-isme/lms-go-api/internal/middleware"
	"github.com/noah-isme/lms-go-api/internal/models"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler           *handler.AuthHandler
	TeacherSubjectHandler *handler.TeacherSubjectHandler
	TeacherTaskHandler    *handler.TeacherTaskHandler
	StudentHandler        *handler.StudentHandler
	SeedHandler           *handler.SeedHandler
	JWTMiddleware         fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		auth := api.Group("/auth", middleware.RateLimit("auth", 20, time.Minute))
		deps.AuthHandler.Register(auth)
	}

	if deps.TeacherSubjectHandler != nil || deps.TeacherTaskHandler != nil {
		teacher := api.Group("/teacher", jwtMiddleware, middleware.RequireRole(models.RoleTeacher))
		if deps.TeacherSubjectHandler != nil {
			deps.TeacherSubjectHandler.Register(teacher)
		}
		if deps.TeacherTaskHandler != nil {
			deps.TeacherTaskHandler.Register(teacher)
		}
	}

	if deps.StudentHandler != nil {
		student := api.Group("/student", jwtMiddleware, middleware.RequireRole(models.RoleStudent))
		deps.StudentHandler.Register(student)
	}

	if deps.SeedHandler != nil {
		setup := api.Group("/setup")
		deps.SeedHandler.Register(setup)
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
