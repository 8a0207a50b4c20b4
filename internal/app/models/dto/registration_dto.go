package dto

import "time"

// RegistrationResponse projects a registration with the joined course fields
type RegistrationResponse struct {
	ID           int64     `json:"id" example:"1"`
	CourseCode   string    `json:"courseCode" example:"CS101"`
	CourseName   string    `json:"courseName" example:"Introduction to Computer Science"`
	Description  *string   `json:"description,omitempty"`
	Credits      int       `json:"credits" example:"3"`
	RegisteredAt time.Time `json:"registeredAt" example:"2025-04-23T12:01:05.123Z"`
}
