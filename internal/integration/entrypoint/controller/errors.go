// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// handleError renders err with the status mapped from its domain code.
// Unrecognized errors are logged and returned as 500 with fallbackCode.
func handleError(ctx *gin.Context, err error, fallbackCode string) {
	var (
		catErr   *domainerror.CategoryError
		incErr   *domainerror.IncomeError
		expErr   *domainerror.ExpenseError
		debtErr  *domainerror.DebtError
		dashErr  *domainerror.DashboardError
		storeErr *domainerror.StoreError
	)

	switch {
	case errors.As(err, &catErr):
		ctx.JSON(getStatusCodeForCategoryError(catErr.Code), dto.ErrorResponse{Error: catErr.Message, Code: string(catErr.Code)})
	case errors.As(err, &incErr):
		ctx.JSON(getStatusCodeForIncomeError(incErr.Code), dto.ErrorResponse{Error: incErr.Message, Code: string(incErr.Code)})
	case errors.As(err, &expErr):
		ctx.JSON(getStatusCodeForExpenseError(expErr.Code), dto.ErrorResponse{Error: expErr.Message, Code: string(expErr.Code)})
	case errors.As(err, &debtErr):
		ctx.JSON(getStatusCodeForDebtError(debtErr.Code), dto.ErrorResponse{Error: debtErr.Message, Code: string(debtErr.Code)})
	case errors.As(err, &dashErr):
		ctx.JSON(getStatusCodeForDashboardError(dashErr.Code), dto.ErrorResponse{Error: dashErr.Message, Code: string(dashErr.Code)})
	case errors.As(err, &storeErr):
		slog.Warn("Record store unavailable", "path", ctx.FullPath(), "code", storeErr.Code, "error", err)
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   "The service is temporarily unavailable, please retry",
			Code:    string(storeErr.Code),
			Details: storeErr.Message,
		})
	default:
		slog.Error("Unhandled request error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  fallbackCode,
		})
	}
}

// parseID reads the :id path parameter. It writes a 400 response and returns false when the id is malformed.
func parseID(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + resource + " ID format",
			Code:  string(domainerror.ErrCodeInvalidID),
		})
		return uuid.Nil, false
	}
	return id, true
}

func getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameRequired,
		domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeMissingCategoryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForIncomeError(code domainerror.IncomeErrorCode) int {
	switch code {
	case domainerror.ErrCodeIncomeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingIncomeFields,
		domainerror.ErrCodeInvalidIncomeAmount,
		domainerror.ErrCodeIncomeAmountPrecision,
		domainerror.ErrCodeIncomeSourceRequired,
		domainerror.ErrCodeInvalidIncomeType,
		domainerror.ErrCodeInvalidIncomeDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeExpenseAmountPrecision,
		domainerror.ErrCodeExpenseDescriptionRequired,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeInvalidExpenseCategoryID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeDebtNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDebtAlreadyPaid:
		return http.StatusConflict
	case domainerror.ErrCodeOverpayment:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeMissingDebtFields,
		domainerror.ErrCodeDebtNameRequired,
		domainerror.ErrCodeInvalidTotalAmount,
		domainerror.ErrCodeDebtAmountPrecision,
		domainerror.ErrCodeInvalidDueDate,
		domainerror.ErrCodeInvalidPaymentAmount,
		domainerror.ErrCodeTotalBelowPaid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidLimit:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
