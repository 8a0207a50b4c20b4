package dto

// CreateStudentRequest carries the data for admin-initiated student creation.
// A login account is created alongside the student; Role defaults to STUDENT
// when omitted.
type CreateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role,omitempty" binding:"omitempty,oneof=ADMIN STUDENT"`
}

// UpdateStudentRequest carries updatable student fields. The student_id
// business key is not updatable.
type UpdateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
}

// StudentResponse represents a student record
type StudentResponse struct {
	ID        int64  `json:"id" example:"1"`
	FirstName string `json:"firstName" example:"John"`
	LastName  string `json:"lastName" example:"Doe"`
	Email     string `json:"email" example:"john.doe@school.edu"`
	StudentID string `json:"studentId" example:"STU001"`
}
