package quote

import "time"

// SubmitRequest represents a quote request submission from the public site
type SubmitRequest struct {
	WebsiteType    string   `json:"websiteType" binding:"required" validate:"website_type"`
	Features       []string `json:"features"`
	Budget         string   `json:"budget" binding:"required" validate:"quote_budget"`
	Timeline       string   `json:"timeline" binding:"required" validate:"quote_timeline"`
	CompanyName    string   `json:"companyName" binding:"required,max=200"`
	ContactPerson  string   `json:"contactPerson" binding:"required,max=200"`
	Email          string   `json:"email" binding:"required,email,max=255"`
	Phone          string   `json:"phone" binding:"required,max=30"`
	AdditionalInfo string   `json:"additionalInfo" binding:"max=2000"`
}

// UpdateStatusRequest represents a status change from the dashboard
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"quote_status"`
}

// QuoteResponse represents a stored quote request
type QuoteResponse struct {
	ID             string    `json:"id"`
	WebsiteType    string    `json:"websiteType"`
	Features       []string  `json:"features"`
	Budget         string    `json:"budget"`
	Timeline       string    `json:"timeline"`
	CompanyName    string    `json:"companyName"`
	ContactPerson  string    `json:"contactPerson"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	AdditionalInfo string    `json:"additionalInfo,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// SubmitResponse is returned after a successful submission
type SubmitResponse struct {
	ID string `json:"id"`
}
