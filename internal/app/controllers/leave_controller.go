package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/app/services"
	"github.com/yigit/hostelhub/internal/middleware"
)

// LeaveController handles leave application lifecycle operations
type LeaveController struct {
	leaveService services.LeaveService
}

// NewLeaveController creates a new LeaveController
func NewLeaveController(leaveService services.LeaveService) *LeaveController {
	return &LeaveController{
		leaveService: leaveService,
	}
}

// CreateLeave files a new leave application
// @Summary Apply for leave
// @Description Creates a leave application in Pending state
// @Tags leaves
// @Accept json
// @Produce json
// @Param request body dto.CreateLeaveRequest true "Leave application"
// @Success 201 {object} dto.APIResponse{data=models.Leave} "Leave created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or date range"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leaves [post]
func (c *LeaveController) CreateLeave(ctx *gin.Context) {
	var req dto.CreateLeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid leave data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	leave, err := c.leaveService.CreateLeave(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      leave,
		Timestamp: time.Now(),
	})
}

// GetLeaveByID retrieves a leave application by ID
// @Summary Get leave by ID
// @Description Retrieves a specific leave application by its ID
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path int true "Leave ID"
// @Success 200 {object} dto.APIResponse{data=models.Leave} "Leave retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid leave ID"
// @Failure 404 {object} dto.ErrorResponse "Leave not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leaves/{id} [get]
func (c *LeaveController) GetLeaveByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	leave, err := c.leaveService.GetLeaveByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      leave,
		Timestamp: time.Now(),
	})
}

// DecideLeave approves or rejects a pending application
// @Summary Decide on a leave application
// @Description Moves a Pending application to Approved or Rejected
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path int true "Leave ID"
// @Param request body dto.DecideLeaveRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.Leave} "Leave decided successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid decision"
// @Failure 404 {object} dto.ErrorResponse "Leave not found"
// @Failure 409 {object} dto.ErrorResponse "Leave is not pending"
// @Router /leaves/{id}/status [patch]
func (c *LeaveController) DecideLeave(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.DecideLeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid decision data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	leave, err := c.leaveService.DecideLeave(ctx, id, models.LeaveStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      leave,
		Timestamp: time.Now(),
	})
}

// CheckoutLeave records the student physically leaving
// @Summary Check out on an approved leave
// @Description Moves an Approved application to CheckedOut and stamps the checkout time
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path int true "Leave ID"
// @Success 200 {object} dto.APIResponse{data=models.Leave} "Checked out successfully"
// @Failure 404 {object} dto.ErrorResponse "Leave not found"
// @Failure 409 {object} dto.ErrorResponse "Leave is not approved"
// @Router /leaves/{id}/checkout [patch]
func (c *LeaveController) CheckoutLeave(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	leave, err := c.leaveService.CheckoutLeave(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      leave,
		Timestamp: time.Now(),
	})
}

// CheckinLeave records the student's return
// @Summary Check in after leave
// @Description Moves a CheckedOut application to Completed and stamps the checkin time
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path int true "Leave ID"
// @Success 200 {object} dto.APIResponse{data=models.Leave} "Checked in successfully"
// @Failure 404 {object} dto.ErrorResponse "Leave not found"
// @Failure 409 {object} dto.ErrorResponse "Leave is not checked out"
// @Router /leaves/{id}/checkin [patch]
func (c *LeaveController) CheckinLeave(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	leave, err := c.leaveService.CheckinLeave(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      leave,
		Timestamp: time.Now(),
	})
}
