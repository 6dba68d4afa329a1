// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// Options holds the cross-cutting settings applied to the API group.
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	options             Options
	healthController    *controller.HealthController
	categoryController  *controller.CategoryController
	incomeController    *controller.IncomeController
	expenseController   *controller.ExpenseController
	debtController      *controller.DebtController
	dashboardController *controller.DashboardController
	writeRateLimiter    *middleware.RateLimiter
	dashboardCache      adapter.DashboardCache
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	options Options,
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	debtController *controller.DebtController,
	dashboardController *controller.DashboardController,
	writeRateLimiter *middleware.RateLimiter,
	dashboardCache adapter.DashboardCache,
) *Router {
	return &Router{
		options:             options,
		healthController:    healthController,
		categoryController:  categoryController,
		incomeController:    incomeController,
		expenseController:   expenseController,
		debtController:      debtController,
		dashboardController: dashboardController,
		writeRateLimiter:    writeRateLimiter,
		dashboardCache:      dashboardCache,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.CORS(r.options.AllowedOrigins))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	api.Use(
		middleware.Timeout(r.options.RequestTimeout),
		r.writeRateLimiter.Middleware(),
		middleware.InvalidateDashboardCache(r.dashboardCache),
	)

	categories := api.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.GET("/:id", r.categoryController.Get)
		categories.PUT("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
	}

	income := api.Group("/income")
	{
		income.GET("", r.incomeController.List)
		income.POST("", r.incomeController.Create)
		income.GET("/:id", r.incomeController.Get)
		income.PUT("/:id", r.incomeController.Update)
		income.DELETE("/:id", r.incomeController.Delete)
	}

	expenses := api.Group("/expenses")
	{
		expenses.GET("", r.expenseController.List)
		expenses.POST("", r.expenseController.Create)
		expenses.GET("/:id", r.expenseController.Get)
		expenses.PUT("/:id", r.expenseController.Update)
		expenses.DELETE("/:id", r.expenseController.Delete)
	}

	debts := api.Group("/debts")
	{
		debts.GET("", r.debtController.List)
		debts.POST("", r.debtController.Create)
		debts.GET("/:id", r.debtController.Get)
		debts.PUT("/:id", r.debtController.Update)
		debts.DELETE("/:id", r.debtController.Delete)
		debts.PATCH("/:id/pay", r.debtController.Pay)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/summary", r.dashboardController.GetSummary)
		dashboard.GET("/recent-transactions", r.dashboardController.GetRecentTransactions)
		dashboard.GET("/expenses-analysis", r.dashboardController.GetExpenseAnalysis)
	}
}
