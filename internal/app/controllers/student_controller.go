package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appauth "github.com/ecesahin/registrar/internal/app/auth"
	"github.com/ecesahin/registrar/internal/app/models"
	"github.com/ecesahin/registrar/internal/app/models/dto"
	"github.com/ecesahin/registrar/internal/app/services"
	"github.com/ecesahin/registrar/internal/middleware"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService *services.StudentService
	authzService   *appauth.AuthorizationService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, authzService *appauth.AuthorizationService) *StudentController {
	return &StudentController{
		studentService: studentService,
		authzService:   authzService,
	}
}

func studentToResponse(student *models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
		StudentID: student.StudentID,
	}
}

// CreateStudent handles admin-initiated student creation
// @Summary Create a new student
// @Description Creates a login account and a student record with a generated business key
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	if decision := c.authzService.AdminOnly(middleware.PrincipalFromContext(ctx)); !decision.Allowed {
		middleware.HandleForbidden(ctx, decision.Reason)
		return
	}

	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.CreateStudentWithPassword(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(studentToResponse(student)))
}

// GetAllStudents lists all students (admin only)
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	if decision := c.authzService.AdminOnly(middleware.PrincipalFromContext(ctx)); !decision.Allowed {
		middleware.HandleForbidden(ctx, decision.Reason)
		return
	}

	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, studentToResponse(student))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(responses))
}

// GetStudentByID retrieves a student (admin, or the student itself)
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 403 {object} dto.ErrorResponse "Not the record owner"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	decision := c.authzService.AdminOrSelfByID(ctx.Request.Context(), middleware.PrincipalFromContext(ctx), id)
	if !decision.Allowed {
		middleware.HandleForbidden(ctx, decision.Reason)
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(studentToResponse(student)))
}

// UpdateStudent updates a student's name and email (admin, or the student itself)
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated fields"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 403 {object} dto.ErrorResponse "Not the record owner"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /students/{studentId} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	decision := c.authzService.AdminOrSelfByID(ctx.Request.Context(), middleware.PrincipalFromContext(ctx), id)
	if !decision.Allowed {
		middleware.HandleForbidden(ctx, decision.Reason)
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(studentToResponse(student)))
}

// DeleteStudent removes a student (admin only)
// @Summary Delete student
// @Tags students
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 204 "Student deleted"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if decision := c.authzService.AdminOnly(middleware.PrincipalFromContext(ctx)); !decision.Allowed {
		middleware.HandleForbidden(ctx, decision.Reason)
		return
	}

	id, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseIDParam parses a numeric path parameter, writing a 400 response on failure
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
