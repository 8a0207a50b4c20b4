package models

import (
	"time"
)

// CourseRegistration is the join entity linking a Student and a Course.
// At most one registration exists per (student, course) pair.
type CourseRegistration struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	CourseID     int64     `json:"courseId" db:"course_id"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
