package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/debt"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// DebtController handles debt endpoints.
type DebtController struct {
	listUseCase   *debt.ListDebtsUseCase
	getUseCase    *debt.GetDebtUseCase
	createUseCase *debt.CreateDebtUseCase
	updateUseCase *debt.UpdateDebtUseCase
	deleteUseCase *debt.DeleteDebtUseCase
	payUseCase    *debt.PayDebtUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	getUseCase *debt.GetDebtUseCase,
	createUseCase *debt.CreateDebtUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	payUseCase *debt.PayDebtUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		payUseCase:    payUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	debts, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(debts))
}

// Get handles GET /debts/:id requests.
func (c *DebtController) Get(ctx *gin.Context) {
	debtID, ok := parseID(ctx, "debt")
	if !ok {
		return
	}

	d, err := c.getUseCase.Execute(ctx.Request.Context(), debtID)
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(d))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	req, ok := bindDebtRequest(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), debt.CreateDebtInput{
		Name:        req.Name,
		TotalAmount: *req.TotalAmount,
		DueDate:     req.DueDate,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// Update handles PUT /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	debtID, ok := parseID(ctx, "debt")
	if !ok {
		return
	}
	req, ok := bindDebtRequest(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), debt.UpdateDebtInput{
		DebtID:      debtID,
		Name:        req.Name,
		TotalAmount: *req.TotalAmount,
		DueDate:     req.DueDate,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	debtID, ok := parseID(ctx, "debt")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), debtID); err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Pay handles PATCH /debts/:id/pay requests.
func (c *DebtController) Pay(ctx *gin.Context) {
	debtID, ok := parseID(ctx, "debt")
	if !ok {
		return
	}

	var req dto.PayDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidPaymentAmount),
			Details: err.Error(),
		})
		return
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), debt.PayDebtInput{
		DebtID: debtID,
		Amount: *req.Amount,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}

func bindDebtRequest(ctx *gin.Context) (*dto.DebtRequest, bool) {
	var req dto.DebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingDebtFields),
			Details: err.Error(),
		})
		return nil, false
	}
	return &req, true
}
