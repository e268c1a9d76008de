package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/mkulima/shamba-api/internal/application/service"
	"github.com/mkulima/shamba-api/internal/config"
	"github.com/mkulima/shamba-api/internal/infrastructure/database"
	"github.com/mkulima/shamba-api/internal/infrastructure/repository"
	"github.com/mkulima/shamba-api/internal/live"
	"github.com/mkulima/shamba-api/internal/presentation/http/handler"
	"github.com/mkulima/shamba-api/internal/presentation/http/routes"
	"github.com/mkulima/shamba-api/internal/scheduler"
	"github.com/mkulima/shamba-api/pkg/storage"
	"github.com/mkulima/shamba-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize image storage
	imageStore, err := storage.NewLocalStorage(cfg.Storage.Path, cfg.Storage.PublicURL, cfg.Storage.UploadMaxSize)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Live change-notification hub
	hub := live.NewHub()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	rewardService := service.NewRewardService(rewardRepo, userRepo)
	saleService := service.NewSaleService(saleRepo, rewardService, hub)
	expenseService := service.NewExpenseService(expenseRepo, rewardService, hub)
	debtService := service.NewDebtService(debtRepo, hub)
	workerService := service.NewWorkerService(workerRepo, hub)
	topicService := service.NewTopicService(topicRepo, rewardService, imageStore, hub)
	taskService := service.NewTaskService(taskRepo, rewardService, hub)
	budgetService := service.NewBudgetService(saleRepo, expenseRepo, debtRepo, workerRepo)
	reportService := service.NewReportService(budgetService)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Sale:     handler.NewSaleHandler(saleService),
		Expense:  handler.NewExpenseHandler(expenseService),
		Debt:     handler.NewDebtHandler(debtService),
		Worker:   handler.NewWorkerHandler(workerService),
		Topic:    handler.NewTopicHandler(topicService, authService),
		Task:     handler.NewTaskHandler(taskService),
		Budget:   handler.NewBudgetHandler(budgetService, reportService),
		Reward:   handler.NewRewardHandler(rewardService),
		Settings: handler.NewSettingsHandler(settingsService),
		Live:     handler.NewLiveHandler(hub, saleService, expenseService, debtService, workerService, taskService, topicService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Reminder scheduler runs until shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(cfg.Reminder.CronSpec, taskRepo, hub)
	go func() {
		if err := sched.Start(ctx); err != nil {
			log.Printf("Warning: reminder scheduler failed to start: %v", err)
		}
	}()

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
