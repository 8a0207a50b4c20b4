package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecesahin/registrar/internal/app/models"
	"github.com/ecesahin/registrar/internal/app/models/dto"
	"github.com/ecesahin/registrar/internal/pkg/apperrors"
)

// StudentResolver resolves students by numeric ID or business key
type StudentResolver interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
}

// CourseResolver resolves courses by numeric ID or course code
type CourseResolver interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
}

// RegistrationStore is the registration repository surface the service depends on
type RegistrationStore interface {
	Create(ctx context.Context, registration *models.CourseRegistration) error
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	DeletePair(ctx context.Context, studentID, courseID int64) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.CourseRegistration, error)
}

// RegistrationService handles course registrations. Every operation has two
// call shapes, by business keys (STU001 + course code) and by numeric ids,
// with identical semantics.
type RegistrationService struct {
	registrationRepo RegistrationStore
	studentRepo      StudentResolver
	courseRepo       CourseResolver
	logger           zerolog.Logger
	clock            func() time.Time
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(
	registrationRepo RegistrationStore,
	studentRepo StudentResolver,
	courseRepo CourseResolver,
	logger zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		studentRepo:      studentRepo,
		courseRepo:       courseRepo,
		logger:           logger,
		clock:            time.Now,
	}
}

// RegisterByKeys registers a student (by business key) for a course (by code)
func (s *RegistrationService) RegisterByKeys(ctx context.Context, studentID, courseCode string) (*dto.RegistrationResponse, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByCode(ctx, courseCode)
	if err != nil {
		return nil, err
	}

	return s.register(ctx, student, course)
}

// RegisterByIDs registers a student for a course by numeric ids
func (s *RegistrationService) RegisterByIDs(ctx context.Context, studentID, courseID int64) (*dto.RegistrationResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return s.register(ctx, student, course)
}

func (s *RegistrationService) register(ctx context.Context, student *models.Student, course *models.Course) (*dto.RegistrationResponse, error) {
	exists, err := s.registrationRepo.Exists(ctx, student.ID, course.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking registration: %w", err)
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrRegistrationAlreadyExists,
			fmt.Sprintf("student %s is already registered for course %s", student.StudentID, course.Code))
	}

	registration := &models.CourseRegistration{
		StudentID:    student.ID,
		CourseID:     course.ID,
		RegisteredAt: s.clock(),
	}

	// The storage-level pair constraint still guards the race between the
	// existence check and this insert.
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentId", student.StudentID).Str("courseCode", course.Code).Msg("Student registered for course")

	return &dto.RegistrationResponse{
		ID:           registration.ID,
		CourseCode:   course.Code,
		CourseName:   course.Name,
		Description:  course.Description,
		Credits:      course.Credits,
		RegisteredAt: registration.RegisteredAt,
	}, nil
}

// UnregisterByKeys removes the registration for a student (by business key)
// and course (by code)
func (s *RegistrationService) UnregisterByKeys(ctx context.Context, studentID, courseCode string) error {
	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return err
	}

	course, err := s.courseRepo.GetByCode(ctx, courseCode)
	if err != nil {
		return err
	}

	return s.registrationRepo.DeletePair(ctx, student.ID, course.ID)
}

// UnregisterByIDs removes the registration for a (student, course) pair by
// numeric ids
func (s *RegistrationService) UnregisterByIDs(ctx context.Context, studentID, courseID int64) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	return s.registrationRepo.DeletePair(ctx, student.ID, course.ID)
}

// GetStudentCoursesByKey lists a student's registrations by business key,
// each projected with the joined course's code, name, description and credits.
func (s *RegistrationService) GetStudentCoursesByKey(ctx context.Context, studentID string) ([]*dto.RegistrationResponse, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return s.listCourses(ctx, student.ID)
}

// GetStudentCoursesByID lists a student's registrations by numeric id
func (s *RegistrationService) GetStudentCoursesByID(ctx context.Context, studentID int64) ([]*dto.RegistrationResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return s.listCourses(ctx, student.ID)
}

func (s *RegistrationService) listCourses(ctx context.Context, studentID int64) ([]*dto.RegistrationResponse, error) {
	registrations, err := s.registrationRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.RegistrationResponse, 0, len(registrations))
	for _, registration := range registrations {
		course := registration.Course
		if course == nil {
			return nil, fmt.Errorf("registration %d has no joined course", registration.ID)
		}
		responses = append(responses, &dto.RegistrationResponse{
			ID:           registration.ID,
			CourseCode:   course.Code,
			CourseName:   course.Name,
			Description:  course.Description,
			Credits:      course.Credits,
			RegisteredAt: registration.RegisteredAt,
		})
	}

	return responses, nil
}
