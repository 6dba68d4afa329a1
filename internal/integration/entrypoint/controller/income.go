package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/income"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	listUseCase   *income.ListIncomesUseCase
	getUseCase    *income.GetIncomeUseCase
	createUseCase *income.CreateIncomeUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomesUseCase,
	getUseCase *income.GetIncomeUseCase,
	createUseCase *income.CreateIncomeUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /income requests.
func (c *IncomeController) List(ctx *gin.Context) {
	incomes, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(incomes))
}

// Get handles GET /income/:id requests.
func (c *IncomeController) Get(ctx *gin.Context) {
	incomeID, ok := parseID(ctx, "income")
	if !ok {
		return
	}

	in, err := c.getUseCase.Execute(ctx.Request.Context(), incomeID)
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(in))
}

// Create handles POST /income requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	req, ok := bindIncomeRequest(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), income.CreateIncomeInput{
		Amount: *req.Amount,
		Source: req.Source,
		Type:   entity.IncomeType(req.Type),
		Date:   req.Date,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// Update handles PUT /income/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	incomeID, ok := parseID(ctx, "income")
	if !ok {
		return
	}
	req, ok := bindIncomeRequest(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), income.UpdateIncomeInput{
		IncomeID: incomeID,
		Amount:   *req.Amount,
		Source:   req.Source,
		Type:     entity.IncomeType(req.Type),
		Date:     req.Date,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Delete handles DELETE /income/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	incomeID, ok := parseID(ctx, "income")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), incomeID); err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeInternal))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func bindIncomeRequest(ctx *gin.Context) (*dto.IncomeRequest, bool) {
	var req dto.IncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingIncomeFields),
			Details: err.Error(),
		})
		return nil, false
	}
	return &req, true
}
