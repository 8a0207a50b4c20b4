package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/ecesahin/registrar/internal/app/auth"
	"github.com/ecesahin/registrar/internal/app/models/dto"
	"github.com/ecesahin/registrar/internal/app/services"
	"github.com/ecesahin/registrar/internal/middleware"
)

// RegistrationController handles course registration endpoints. Routes are
// addressed by business keys: the student's STU### identifier and the course
// code.
type RegistrationController struct {
	registrationService *services.RegistrationService
	authzService        *appauth.AuthorizationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService, authzService *appauth.AuthorizationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		authzService:        authzService,
	}
}

// RegisterForCourse registers a student for a course
// @Summary Register for course
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student business key (STU001)"
// @Param courseCode path string true "Course code"
// @Success 201 {object} dto.APIResponse{data=dto.RegistrationResponse} "Registration created"
// @Failure 403 {object} dto.ErrorResponse "Not the record owner"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Router /students/{studentId}/courses/{courseCode}/register [post]
func (c *RegistrationController) RegisterForCourse(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	courseCode := ctx.Param("courseCode")

	decision := c.authzService.AdminOrSelfByStudentID(ctx.Request.Context(), middleware.PrincipalFromContext(ctx), studentID)
	if !decision.Allowed {
		middleware.HandleForbidden(ctx, decision.Reason)
		return
	}

	registration, err := c.registrationService.RegisterByKeys(ctx.Request.Context(), studentID, courseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(registration))
}

// UnregisterFromCourse removes a student's course registration
// @Summary Unregister from course
// @Tags registrations
// @Security BearerAuth
// @Param studentId path string true "Student business key (STU001)"
// @Param courseCode path string true "Course code"
// @Success 204 "Registration removed"
// @Failure 403 {object} dto.ErrorResponse "Not the record owner"
// @Failure 404 {object} dto.ErrorResponse "Student, course or registration not found"
// @Router /students/{studentId}/courses/{courseCode}/unregister [delete]
func (c *RegistrationController) UnregisterFromCourse(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	courseCode := ctx.Param("courseCode")

	decision := c.authzService.AdminOrSelfByStudentID(ctx.Request.Context(), middleware.PrincipalFromContext(ctx), studentID)
	if !decision.Allowed {
		middleware.HandleForbidden(ctx, decision.Reason)
		return
	}

	if err := c.registrationService.UnregisterByKeys(ctx.Request.Context(), studentID, courseCode); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetStudentCourses lists a student's registrations with course details
// @Summary List student's courses
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student business key (STU001)"
// @Success 200 {object} dto.APIResponse{data=[]dto.RegistrationResponse}
// @Failure 403 {object} dto.ErrorResponse "Not the record owner"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/courses [get]
func (c *RegistrationController) GetStudentCourses(ctx *gin.Context) {
	studentID := ctx.Param("studentId")

	decision := c.authzService.AdminOrSelfByStudentID(ctx.Request.Context(), middleware.PrincipalFromContext(ctx), studentID)
	if !decision.Allowed {
		middleware.HandleForbidden(ctx, decision.Reason)
		return
	}

	registrations, err := c.registrationService.GetStudentCoursesByKey(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(registrations))
}
