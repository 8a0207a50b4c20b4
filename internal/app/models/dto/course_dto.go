package dto

// CourseRequest carries the data for course creation and update
type CourseRequest struct {
	Code        string  `json:"code" binding:"required,min=3,max=20"`
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
	Credits     int     `json:"credits" binding:"required,gt=0"`
}

// CourseResponse represents a course catalog entry
type CourseResponse struct {
	ID          int64   `json:"id" example:"1"`
	Code        string  `json:"code" example:"CS101"`
	Name        string  `json:"name" example:"Introduction to Computer Science"`
	Description *string `json:"description,omitempty"`
	Credits     int     `json:"credits" example:"3"`
}
