package models

import (
	"time"
)

// Student defines the student model based on the 'students' table.
// StudentID is the business key (format STU###); it is assigned once at
// creation and never mutated afterwards.
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	FirstName string    `json:"firstName" db:"first_name" example:"John"`
	LastName  string    `json:"lastName" db:"last_name" example:"Doe"`
	Email     string    `json:"email" db:"email" example:"john.doe@school.edu"`
	StudentID string    `json:"studentId" db:"student_id" example:"STU001"`
	UserID    *int64    `json:"userId,omitempty" db:"user_id"` // Linked login account (nullable)
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User *User `json:"user,omitempty"`
}
