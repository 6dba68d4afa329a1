// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/usecase/category"
	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	"github.com/budget-tracker/backend/internal/application/usecase/debt"
	"github.com/budget-tracker/backend/internal/application/usecase/expense"
	"github.com/budget-tracker/backend/internal/application/usecase/income"
	"github.com/budget-tracker/backend/internal/infra/server/router"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// now drives the default summary month; pass nil for the wall clock.
func NewInjector(cfg *config.Config, db *gorm.DB, cache adapter.DashboardCache, now dashboard.Clock) *Injector {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	debtRepo := persistence.NewDebtRepository(db)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create income use cases
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	getIncomeUseCase := income.NewGetIncomeUseCase(incomeRepo)
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, categoryRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo, categoryRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create debt use cases
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	getDebtUseCase := debt.NewGetDebtUseCase(debtRepo)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)
	payDebtUseCase := debt.NewPayDebtUseCase(debtRepo)

	// Create dashboard use cases
	loader := dashboard.NewRecordLoader(categoryRepo, incomeRepo, expenseRepo, debtRepo)
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(loader, cache, now)
	getExpenseAnalysisUseCase := dashboard.NewGetExpenseAnalysisUseCase(loader, cache)
	getRecentTransactionsUseCase := dashboard.NewGetRecentTransactionsUseCase(loader, cache, cfg.Dashboard.RecentLimit)

	// Create controllers
	healthController := controller.NewHealthController(func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}, now)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		getCategoryUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	incomeController := controller.NewIncomeController(
		listIncomesUseCase,
		getIncomeUseCase,
		createIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		getExpenseUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	debtController := controller.NewDebtController(
		listDebtsUseCase,
		getDebtUseCase,
		createDebtUseCase,
		updateDebtUseCase,
		deleteDebtUseCase,
		payDebtUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		getExpenseAnalysisUseCase,
		getRecentTransactionsUseCase,
	)

	// Create middleware
	writeRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	// Create router
	r := router.NewRouter(
		router.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		healthController,
		categoryController,
		incomeController,
		expenseController,
		debtController,
		dashboardController,
		writeRateLimiter,
		cache,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
