package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase  *dashboard.GetSummaryUseCase
	analysisUseCase *dashboard.GetExpenseAnalysisUseCase
	recentUseCase   *dashboard.GetRecentTransactionsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	analysisUseCase *dashboard.GetExpenseAnalysisUseCase,
	recentUseCase *dashboard.GetRecentTransactionsUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:  summaryUseCase,
		analysisUseCase: analysisUseCase,
		recentUseCase:   recentUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
// Query parameters:
//   - month: YYYY-MM (optional, defaults to the current month)
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	input := dashboard.GetSummaryInput{}
	if raw := ctx.Query("month"); raw != "" {
		month, err := dashboard.ParseMonth(raw)
		if err != nil {
			c.handleError(ctx, err)
			return
		}
		input.Month = &month
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}

// GetExpenseAnalysis handles GET /dashboard/expenses-analysis requests.
// Query parameters:
//   - period: daily, weekly or monthly (optional, defaults to monthly)
//   - start_date, end_date: YYYY-MM-DD (optional, narrow the bar series)
func (c *DashboardController) GetExpenseAnalysis(ctx *gin.Context) {
	period, err := dashboard.ParsePeriod(ctx.Query("period"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	startDate, err := parseDateQuery(ctx.Query("start_date"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	endDate, err := parseDateQuery(ctx.Query("end_date"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	output, err := c.analysisUseCase.Execute(ctx.Request.Context(), dashboard.GetExpenseAnalysisInput{
		Period: period,
		Window: dashboard.DateRange{Start: startDate, End: endDate},
	})
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseAnalysisResponse(output.Analysis))
}

// GetRecentTransactions handles GET /dashboard/recent-transactions requests.
// Query parameters:
//   - limit: 1..100 (optional)
func (c *DashboardController) GetRecentTransactions(ctx *gin.Context) {
	input := dashboard.GetRecentTransactionsInput{}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a positive integer",
				Code:  string(domainerror.ErrCodeInvalidLimit),
			})
			return
		}
		input.Limit = limit
	}

	output, err := c.recentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecentTransactionsResponse(output.Transactions))
}

func (c *DashboardController) handleError(ctx *gin.Context, err error) {
	handleError(ctx, err, string(domainerror.ErrCodeDashboardInternalError))
}

func parseDateQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(entity.DateLayout, raw)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateFormat,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}
	return &t, nil
}
