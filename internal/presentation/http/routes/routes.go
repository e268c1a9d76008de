package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkulima/shamba-api/internal/config"
	domainRepo "github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/presentation/http/handler"
	"github.com/mkulima/shamba-api/internal/presentation/http/middleware"
	"github.com/mkulima/shamba-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Sale     *handler.SaleHandler
	Expense  *handler.ExpenseHandler
	Debt     *handler.DebtHandler
	Worker   *handler.WorkerHandler
	Topic    *handler.TopicHandler
	Task     *handler.TaskHandler
	Budget   *handler.BudgetHandler
	Reward   *handler.RewardHandler
	Settings *handler.SettingsHandler
	Live     *handler.LiveHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Uploaded topic images
	router.Static(deps.Cfg.Storage.PublicURL, deps.Cfg.Storage.Path)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)
		v1.GET("/topics/public", h.Topic.ListPublic)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewOwnerRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Replay duplicate form submissions from their cached response
		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Rewards
	protected.GET("/rewards", h.Reward.Profile)

	// Budget
	protected.GET("/budget/summary", h.Budget.Summary)
	protected.GET("/budget/report.xlsx", h.Budget.Report)

	// Live feeds
	protected.GET("/live/:collection", h.Live.Stream)

	registerSaleRoutes(protected, h)
	registerExpenseRoutes(protected, h)
	registerDebtRoutes(protected, h)
	registerWorkerRoutes(protected, h)
	registerTopicRoutes(protected, h)
	registerTaskRoutes(protected, h)
}

func registerSaleRoutes(rg *gin.RouterGroup, h *Handlers) {
	sales := rg.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.PUT("/:id", h.Sale.Update)
		sales.DELETE("/:id", h.Sale.Delete)
	}
}

func registerExpenseRoutes(rg *gin.RouterGroup, h *Handlers) {
	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}

func registerDebtRoutes(rg *gin.RouterGroup, h *Handlers) {
	debts := rg.Group("/debts")
	{
		debts.GET("", h.Debt.List)
		debts.POST("", h.Debt.Create)
		debts.GET("/archived", h.Debt.ListArchived)
		debts.POST("/archived/:id/restore", h.Debt.Restore)
		debts.DELETE("/archived/:id", h.Debt.DeleteArchived)
		debts.GET("/:id", h.Debt.Get)
		debts.PUT("/:id", h.Debt.Update)
		debts.POST("/:id/payments", h.Debt.AddPayment)
		debts.POST("/:id/archive", h.Debt.Archive)
	}
}

func registerWorkerRoutes(rg *gin.RouterGroup, h *Handlers) {
	workers := rg.Group("/workers")
	{
		workers.GET("", h.Worker.List)
		workers.POST("", h.Worker.Create)
		workers.GET("/:id", h.Worker.Get)
		workers.PUT("/:id", h.Worker.Update)
		workers.DELETE("/:id", h.Worker.Delete)
		workers.POST("/:id/transactions", h.Worker.AddTransaction)
		workers.POST("/:id/pay-salary", h.Worker.PaySalary)
	}
}

func registerTopicRoutes(rg *gin.RouterGroup, h *Handlers) {
	topics := rg.Group("/topics")
	{
		topics.GET("", h.Topic.List)
		topics.POST("", h.Topic.Create)
		topics.GET("/:id", h.Topic.Get)
		topics.PUT("/:id", h.Topic.Update)
		topics.DELETE("/:id", h.Topic.Delete)
		topics.POST("/:id/image", h.Topic.UploadImage)
		topics.POST("/:id/like", h.Topic.Like)
		topics.POST("/:id/comments", h.Topic.AddComment)
	}
}

func registerTaskRoutes(rg *gin.RouterGroup, h *Handlers) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.Task.List)
		tasks.POST("", h.Task.Create)
		tasks.GET("/calendar", h.Task.Calendar)
		tasks.GET("/archived", h.Task.ListArchived)
		tasks.GET("/:id", h.Task.Get)
		tasks.PUT("/:id", h.Task.Update)
		tasks.DELETE("/:id", h.Task.Delete)
		tasks.POST("/:id/complete", h.Task.Complete)
	}
}
