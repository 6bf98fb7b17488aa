package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/lms-go-api/internal/config"
	"github.com/noah-isme/lms-go-api/internal/database"
	"github.com/noah-isme/lms-go-api/internal/handler"
	"github.com/noah-isme/lms-go-api/internal/middleware"
	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/repository"
	"github.com/noah-isme/lms-go-api/internal/router"
	"github.com/noah-isme/lms-go-api/internal/service"
	"github.com/noah-isme/lms-go-api/pkg/security"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Subject{}, &models.Task{}, &models.Solution{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Redis is optional; without it task stats are computed per request.
	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer cache.Close()
	} else {
		logger.Warn().Msg("redis url not configured, task stats caching disabled")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := repository.NewUserRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	solutionRepo := repository.NewSolutionRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	authService := service.NewAuthService(userRepo, tokens, validate, logger)
	subjectService := service.NewSubjectService(subjectRepo, validate, logger)
	taskService := service.NewTaskService(subjectRepo, taskRepo, solutionRepo, cache, cfg.StatsCacheTTL, validate, logger)
	studentService := service.NewStudentService(subjectRepo, taskRepo, solutionRepo, enrollmentRepo, cache, validate, logger)
	seedService := service.NewSeedService(userRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:           handler.NewAuthHandler(authService, logger),
		TeacherSubjectHandler: handler.NewTeacherSubjectHandler(subjectService, logger),
		TeacherTaskHandler:    handler.NewTeacherTaskHandler(taskService, logger),
		StudentHandler:        handler.NewStudentHandler(studentService, logger),
		SeedHandler:           handler.NewSeedHandler(seedService, logger),
		JWTMiddleware:         middleware.JWTProtected(tokens, userRepo),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
