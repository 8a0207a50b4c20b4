package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ecesahin/registrar/internal/app/controllers"
	"github.com/ecesahin/registrar/internal/app/models/dto"
	"github.com/ecesahin/registrar/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	registrationController *controllers.RegistrationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/validate", authController.ValidateToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Course routes. Role checks happen in the controllers so that
		// denials carry a reason instead of a bare 403.
		courses := authenticated.Group("/courses")
		{
			courses.POST("", courseController.CreateCourse)
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		// Student routes. Gin requires a single wildcard name per path
		// segment, so :studentId serves both the numeric record id and
		// the STU-prefixed business key depending on the route.
		students := authenticated.Group("/students")
		{
			students.POST("", studentController.CreateStudent)
			students.GET("", studentController.GetAllStudents)
			students.GET("/:studentId", studentController.GetStudentByID)
			students.PUT("/:studentId", studentController.UpdateStudent)
			students.DELETE("/:studentId", studentController.DeleteStudent)

			// Registration routes keyed by student number and course code
			students.POST("/:studentId/courses/:courseCode/register", registrationController.RegisterForCourse)
			students.DELETE("/:studentId/courses/:courseCode/unregister", registrationController.UnregisterFromCourse)
			students.GET("/:studentId/courses", registrationController.GetStudentCourses)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})
}
