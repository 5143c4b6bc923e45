package freelancer

import "time"

// SubmitRequest represents a freelancer application from the public site
type SubmitRequest struct {
	Name         string   `json:"name" binding:"required,max=200"`
	Email        string   `json:"email" binding:"required,email,max=255"`
	Skills       []string `json:"skills" binding:"required,min=1"`
	Experience   string   `json:"experience" binding:"required" validate:"experience_range"`
	Availability string   `json:"availability" binding:"required" validate:"availability_hours"`
	HourlyRate   string   `json:"hourlyRate" binding:"required" validate:"hourly_rate"`
	Portfolio    string   `json:"portfolio" binding:"omitempty,url,max=500"`
}

// UpdateStatusRequest represents a status change from the dashboard
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"freelancer_status"`
}

// FreelancerResponse represents a stored freelancer application
type FreelancerResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Skills       []string  `json:"skills"`
	Experience   string    `json:"experience"`
	Availability string    `json:"availability"`
	HourlyRate   string    `json:"hourlyRate"`
	Portfolio    string    `json:"portfolio,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SubmitResponse is returned after a successful submission
type SubmitResponse struct {
	ID string `json:"id"`
}
