package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecesahin/registrar/internal/app/models"
	"github.com/ecesahin/registrar/internal/pkg/apperrors"
	"github.com/ecesahin/registrar/internal/pkg/dberrors"
)

// RegistrationRepository handles database operations for course registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// Create inserts a registration for the (student, course) pair. The unique
// pair constraint turns a racing duplicate insert into
// apperrors.ErrRegistrationAlreadyExists.
func (r *RegistrationRepository) Create(ctx context.Context, registration *models.CourseRegistration) error {
	query := `
		INSERT INTO course_registrations (student_id, course_id, registered_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		registration.StudentID, registration.CourseID, registration.RegisteredAt).
		Scan(&registration.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "course_registrations_pair_key") {
			return apperrors.ErrRegistrationAlreadyExists
		}
		return fmt.Errorf("error creating registration: %w", err)
	}

	return nil
}

// Exists checks if a registration exists for the (student, course) pair
func (r *RegistrationRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM course_registrations WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking registration existence: %w", err)
	}

	return exists, nil
}

// DeletePair removes the registration for the (student, course) pair
func (r *RegistrationRepository) DeletePair(ctx context.Context, studentID, courseID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM course_registrations WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	if err != nil {
		return fmt.Errorf("error deleting registration: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// ListByStudent returns all registrations for a student with the joined
// course populated on each entry.
func (r *RegistrationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.CourseRegistration, error) {
	query := `
		SELECT cr.id, cr.student_id, cr.course_id, cr.registered_at,
		       c.id, c.code, c.name, c.description, c.credits, c.created_at, c.updated_at
		FROM course_registrations cr
		JOIN courses c ON c.id = cr.course_id
		WHERE cr.student_id = $1
		ORDER BY cr.registered_at
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registrations: %w", err)
	}
	defer rows.Close()

	var registrations []*models.CourseRegistration
	for rows.Next() {
		var registration models.CourseRegistration
		var course models.Course
		err := rows.Scan(
			&registration.ID,
			&registration.StudentID,
			&registration.CourseID,
			&registration.RegisteredAt,
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Description,
			&course.Credits,
			&course.CreatedAt,
			&course.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		registration.Course = &course
		registrations = append(registrations, &registration)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}
