package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ecesahin/registrar/internal/app/models"
	"github.com/ecesahin/registrar/internal/app/models/dto"
	"github.com/ecesahin/registrar/internal/pkg/apperrors"
	"github.com/ecesahin/registrar/internal/pkg/auth"
	"github.com/ecesahin/registrar/internal/pkg/validation"
)

// studentIDPrefix is the literal prefix of the business key (STU001, STU002, ...)
const studentIDPrefix = "STU"

// StudentStore is the student repository surface the service depends on
type StudentStore interface {
	CreateWithUser(ctx context.Context, user *models.User, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	LastStudentID(ctx context.Context) (string, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// UserDirectory is the user repository surface the service depends on
type UserDirectory interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

// StudentService handles student CRUD, business-key allocation and the
// ownership predicates used by authorization guards.
type StudentService struct {
	studentRepo StudentStore
	userRepo    UserDirectory
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, userRepo UserDirectory, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// CreateStudentWithPassword creates a login account and a student record
// referencing it. The email must be unused in both the user and student
// stores. Both inserts happen in one transaction so a failure leaves no
// orphan behind.
func (s *StudentService) CreateStudentWithPassword(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking user email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	exists, err = s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking student email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	studentID, err := s.nextStudentID(ctx)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	role := models.RoleStudent
	if req.Role != "" {
		role = models.RoleType(req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.Role)
		}
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
	}

	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		StudentID: studentID,
	}

	if err := s.studentRepo.CreateWithUser(ctx, user, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentId", student.StudentID).Int64("id", student.ID).Msg("Student created")
	return student, nil
}

// GetStudentByID retrieves a student by numeric ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// UpdateStudent updates a student's name and email. Changing the email to one
// already used by another student is a conflict. The business key is never
// mutated.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if student.Email != req.Email {
		exists, err := s.studentRepo.EmailExists(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("error checking student email: %w", err)
		}
		if exists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student record. The linked login account is left
// in place; see the design notes on the orphaned account gap.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

// IsOwnID reports whether the principal's email matches the student with the
// given numeric ID. Any lookup failure degrades to a deny decision instead of
// propagating; the guard layer treats false as forbidden.
func (s *StudentService) IsOwnID(ctx context.Context, email string, id int64) bool {
	if email == "" {
		return false
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		// NotFound is the expected deny trigger; anything else is logged so
		// an unrelated failure is not silently masked as a denial.
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			s.logger.Error().Err(err).Int64("id", id).Msg("Ownership lookup failed")
		}
		return false
	}

	return student.Email == email
}

// IsOwnStudentID reports whether the principal's email matches the student
// with the given business key. Same fail-closed behavior as IsOwnID.
func (s *StudentService) IsOwnStudentID(ctx context.Context, email, studentID string) bool {
	if email == "" {
		return false
	}

	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			s.logger.Error().Err(err).Str("studentId", studentID).Msg("Ownership lookup failed")
		}
		return false
	}

	return student.Email == email
}

// nextStudentID allocates the next business key. Keys ascend with no reuse
// after deletion: the allocator only looks at the lexicographically-last
// stored key, so gaps from deleted students stay gaps.
func (s *StudentService) nextStudentID(ctx context.Context) (string, error) {
	last, err := s.studentRepo.LastStudentID(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return studentIDPrefix + "001", nil
		}
		return "", err
	}

	if !validation.IsStudentID(last) {
		return "", fmt.Errorf("%w: %q", apperrors.ErrStudentIDMalformed, last)
	}

	number, err := strconv.Atoi(strings.TrimPrefix(last, studentIDPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %q", apperrors.ErrStudentIDMalformed, last)
	}

	return fmt.Sprintf("%s%03d", studentIDPrefix, number+1), nil
}
