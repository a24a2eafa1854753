package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prs/studentmanagement/internal/app/models/dto"
	"github.com/prs/studentmanagement/internal/app/services"
	"github.com/prs/studentmanagement/internal/middleware"
)

// AcademicsController handles grade recording and enrollment queries
type AcademicsController struct {
	academicsService  services.AcademicsService
	enrollmentService services.EnrollmentService
}

// NewAcademicsController creates a new AcademicsController
func NewAcademicsController(academicsService services.AcademicsService, enrollmentService services.EnrollmentService) *AcademicsController {
	return &AcademicsController{
		academicsService:  academicsService,
		enrollmentService: enrollmentService,
	}
}

// UpdateGrade records a grade for a (student, course) pair
// @Summary Record a grade
// @Description Updates the grade of an existing enrollment, or enrolls the student with the grade when no enrollment exists yet
// @Tags academics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateGradeRequest true "Grade assignment"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Grade recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /academics/grades [put]
func (c *AcademicsController) UpdateGrade(ctx *gin.Context) {
	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enrollment, err := c.academicsService.UpdateGrade(ctx, req.StudentID, req.CourseCode, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// GetEnrollmentsByStudent lists a student's enrollments
// @Summary List enrollments of a student
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved"
// @Router /students/{id}/enrollments [get]
func (c *AcademicsController) GetEnrollmentsByStudent(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetEnrollmentsByStudentID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}
