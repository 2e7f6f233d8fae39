package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/app/services"
	"github.com/yigit/hostelhub/internal/middleware"
)

// StudentController handles resident profile and allocation operations
type StudentController struct {
	studentService    services.StudentService
	allocationService services.AllocationService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, allocationService services.AllocationService) *StudentController {
	return &StudentController{
		studentService:    studentService,
		allocationService: allocationService,
	}
}

// parseIDParam reads the numeric id path parameter shared by every
// resource controller.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid resource ID")
		errorDetail = errorDetail.WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateStudent handles resident registration
// @Summary Register a new student
// @Description Creates a resident profile without a room assignment
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetStudentByID retrieves a resident profile by ID
// @Summary Get student by ID
// @Description Retrieves a specific resident profile by its ID
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// UpdateStudent edits profile fields of a resident
// @Summary Update student profile
// @Description Updates profile fields. Room assignment is not editable here.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// AllocateRoom places a student into the first room with free capacity
// @Summary Allocate a room to a student
// @Description Assigns the first available room, optionally restricted to a block
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param block query string false "Restrict allocation to a block"
// @Success 200 {object} dto.APIResponse{data=dto.AllocationResponse} "Room allocated successfully"
// @Failure 400 {object} dto.ErrorResponse "Student already has a room"
// @Failure 404 {object} dto.ErrorResponse "Student not found or no room with free capacity"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /students/{id}/allocate-room [post]
func (c *StudentController) AllocateRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var block *string
	if b := ctx.Query("block"); b != "" {
		block = &b
	}

	student, room, err := c.allocationService.AllocateRoom(ctx, id, block)
	if err != nil {
		middleware.CountAllocation("failed")
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.CountAllocation("allocated")

	roomResp := dto.NewRoomResponse(room)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.AllocationResponse{
			Student: student,
			Room:    &roomResp,
		},
		Timestamp: time.Now(),
	})
}

// DeallocateRoom vacates the student's current room
// @Summary Deallocate a student's room
// @Description Clears the room assignment and frees the occupancy slot
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.AllocationResponse} "Room deallocated successfully"
// @Failure 400 {object} dto.ErrorResponse "Student has no room assigned"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /students/{id}/deallocate-room [post]
func (c *StudentController) DeallocateRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.allocationService.DeallocateRoom(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.AllocationResponse{Student: student},
		Timestamp: time.Now(),
	})
}
