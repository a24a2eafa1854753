package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prs/studentmanagement/internal/app/controllers"
	"github.com/prs/studentmanagement/internal/app/models/dto"
	"github.com/prs/studentmanagement/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	academicsController *controllers.AcademicsController,
	feeController *controllers.FeeController,
	parentController *controllers.ParentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		students := authenticated.Group("/students")
		{
			students.POST("", studentController.CreateStudent)
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)

			// Per-student sub-resources
			students.GET("/:id/enrollments", academicsController.GetEnrollmentsByStudent)
			students.GET("/:id/fees", feeController.GetFeesByStudent)
		}

		courses := authenticated.Group("/courses")
		{
			courses.POST("", courseController.CreateCourse)
			courses.GET("", courseController.GetAllCourses)
			courses.DELETE("/:courseCode", courseController.DeleteCourse)
		}

		academics := authenticated.Group("/academics")
		{
			academics.PUT("/grades", academicsController.UpdateGrade)
		}

		fees := authenticated.Group("/fees")
		{
			fees.POST("", feeController.CreateFee)
			fees.PUT("/:feeId/payment", feeController.RecordPayment)
		}

		parents := authenticated.Group("/parents")
		{
			parents.GET("/:parentId/children", parentController.GetChildren)
		}
	}
}
