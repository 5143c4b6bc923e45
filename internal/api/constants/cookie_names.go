package constants

// Cookie names used in the application
const (
	// Authentication cookies
	CookieToken = "token" // Dashboard authentication token (HttpOnly)

	// Cookie paths
	CookiePathRoot = "/" // Root path for cookies available throughout the site

	// Cookie duration in seconds
	CookieDuration24h = 86400 // 24 hours
)
