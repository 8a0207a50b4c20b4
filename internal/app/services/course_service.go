package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecesahin/registrar/internal/app/models"
	"github.com/ecesahin/registrar/internal/app/models/dto"
	"github.com/ecesahin/registrar/internal/pkg/apperrors"
)

// CourseStore is the course repository surface the service depends on
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	DeleteWithRegistrations(ctx context.Context, id int64) error
}

// CourseService handles catalog CRUD
type CourseService struct {
	courseRepo CourseStore
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// CreateCourse creates a new catalog entry; the course code must be unused.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	exists, err := s.courseRepo.CodeExists(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("error checking course code: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCourseCodeAlreadyExists
	}

	course := &models.Course{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Credits:     req.Credits,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Str("code", course.Code).Int64("id", course.ID).Msg("Course created")
	return course, nil
}

// GetCourseByID retrieves a course by numeric ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetAllCourses retrieves all courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// UpdateCourse updates an existing course. Changing the code to one already
// taken by a different course is a conflict.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.CourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if course.Code != req.Code {
		exists, err := s.courseRepo.CodeExists(ctx, req.Code)
		if err != nil {
			return nil, fmt.Errorf("error checking course code: %w", err)
		}
		if exists {
			return nil, apperrors.ErrCourseCodeAlreadyExists
		}
	}

	course.Code = req.Code
	course.Name = req.Name
	course.Description = req.Description
	course.Credits = req.Credits

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course and all registrations referencing it. The
// two deletes run in one transaction; if either fails neither takes effect.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.DeleteWithRegistrations(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("Course deleted with its registrations")
	return nil
}
