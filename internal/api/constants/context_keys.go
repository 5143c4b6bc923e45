package constants

// Context keys for validated requests
const (
	// Auth context keys
	ContextKeyLogin  = "login"
	ContextKeyUserID = "userID"
	ContextKeyUser   = "user"

	// Validated body context keys
	ContextKeySubmitQuote      = "submitQuote"
	ContextKeySubmitFreelancer = "submitFreelancer"
	ContextKeyUpdateStatus     = "updateStatus"
)
