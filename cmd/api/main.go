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
	"github.com/rs/zerolog"

	"github.com/noah-isme/eduonboard-api/internal/config"
	"github.com/noah-isme/eduonboard-api/internal/database"
	"github.com/noah-isme/eduonboard-api/internal/handler"
	"github.com/noah-isme/eduonboard-api/internal/middleware"
	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/repository"
	"github.com/noah-isme/eduonboard-api/internal/router"
	"github.com/noah-isme/eduonboard-api/internal/service"
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

	if err := db.AutoMigrate(
		&models.Student{},
		&models.OnboardingTask{},
		&models.Document{},
		&models.Notification{},
		&models.EscalationTicket{},
		&models.ChatMessage{},
		&models.UserRole{},
		&models.Profile{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	chatRepo := repository.NewChatRepository(db)
	identityRepo := repository.NewIdentityRepository(db)

	taskService := service.NewTaskService(taskRepo, studentRepo, logger)
	notificationService := service.NewNotificationService(notificationRepo, validate, logger)
	documentService := service.NewDocumentService(documentRepo, notificationService, validate, cfg.UploadMaxSizeMB, logger)
	ticketService := service.NewTicketService(ticketRepo, studentRepo, validate, logger)
	assistantService := service.NewAssistantService(chatRepo, ticketService, cfg.AssistantReplyDelay, logger)
	adminService := service.NewAdminService(studentRepo, documentRepo, ticketRepo, notificationRepo, redisClient, cfg.AnalyticsCacheTTL, logger)
	sessionService := service.NewSessionService(identityRepo, redisClient, cfg.SessionRevokeTTL, logger)
	seedService := service.NewSeedService(studentRepo, taskRepo, documentRepo, notificationRepo, ticketRepo, cfg.SeedEnabled, cfg.SeedToken, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger, AllowOrigins: cfg.CORSAllowOrigins})
	router.Register(app, cfg, router.Dependencies{
		TaskHandler:         handler.NewTaskHandler(taskService, logger),
		DocumentHandler:     handler.NewDocumentHandler(documentService, logger),
		NotificationHandler: handler.NewNotificationHandler(notificationService, logger),
		SessionHandler:      handler.NewSessionHandler(sessionService, logger),
		AssistantHandler:    handler.NewAssistantHandler(assistantService, logger),
		AdminHandler:        handler.NewAdminHandler(adminService, logger),
		TicketHandler:       handler.NewTicketHandler(ticketService, logger),
		SeedHandler:         handler.NewSeedHandler(seedService, logger),
		JWTMiddleware:       middleware.JWTProtected(cfg.JWTSecret, sessionService),
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
