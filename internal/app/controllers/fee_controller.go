package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/app/models/dto"
	"github.com/prs/studentmanagement/internal/app/services"
	"github.com/prs/studentmanagement/internal/middleware"
)

// FeeController handles fee tracking operations
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{
		feeService: feeService,
	}
}

// CreateFee records a new fee for a student
// @Summary Create a fee record
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeeRequest true "Fee information"
// @Success 201 {object} dto.APIResponse{data=models.Fee} "Fee created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /fees [post]
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fee, err := c.feeService.CreateFee(ctx, &models.Fee{
		StudentID:   req.StudentID,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(fee))
}

// GetFeesByStudent lists a student's fee records
// @Summary List fees of a student
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Fee} "Fees retrieved"
// @Router /students/{id}/fees [get]
func (c *FeeController) GetFeesByStudent(ctx *gin.Context) {
	fees, err := c.feeService.GetFeesByStudentID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fees))
}

// RecordPayment marks a fee as paid
// @Summary Record a fee payment
// @Description Marks the fee as paid; recording a payment on an already paid fee is a no-op
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param feeId path int true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Payment recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid fee ID"
// @Failure 404 {object} dto.ErrorResponse "Fee record not found"
// @Router /fees/{feeId}/payment [put]
func (c *FeeController) RecordPayment(ctx *gin.Context) {
	feeID, err := strconv.ParseInt(ctx.Param("feeId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid fee ID").
			WithField("feeId")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fee, err := c.feeService.RecordPayment(ctx, feeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}
