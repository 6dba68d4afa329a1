package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/usecase/expense"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	getUseCase    *expense.GetExpenseUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	getUseCase *expense.GetExpenseUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	views, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(views))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	expenseID, ok := parseID(ctx, "expense")
	if !ok {
		return
	}

	view, err := c.getUseCase.Execute(ctx.Request.Context(), expenseID)
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(*view))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	req, categoryID, ok := bindExpenseRequest(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		Amount:      *req.Amount,
		Description: req.Description,
		CategoryID:  categoryID,
		Date:        req.Date,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	expenseID, ok := parseID(ctx, "expense")
	if !ok {
		return
	}
	req, categoryID, ok := bindExpenseRequest(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ExpenseID:   expenseID,
		Amount:      *req.Amount,
		Description: req.Description,
		CategoryID:  categoryID,
		Date:        req.Date,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	expenseID, ok := parseID(ctx, "expense")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expenseID); err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindExpenseRequest decodes the body and the optional category id. An empty categoryId means none.
func bindExpenseRequest(ctx *gin.Context) (*dto.ExpenseRequest, *uuid.UUID, bool) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingExpenseFields),
			Details: err.Error(),
		})
		return nil, nil, false
	}

	if req.CategoryID == nil || *req.CategoryID == "" {
		return &req, nil, true
	}

	categoryID, err := uuid.Parse(*req.CategoryID)
	if err != nil {
		handleError(ctx, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategoryID,
			"Invalid category ID format",
			domainerror.ErrInvalidCategoryID,
		), string(domainerror.ErrCodeInternal))
		return nil, nil, false
	}
	return &req, &categoryID, true
}
