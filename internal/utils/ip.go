package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client IP from various headers, respecting reverse proxies
// This function is used consistently across the application to ensure accurate IP tracking
func GetRealIP(c *gin.Context) string {
	// X-Real-IP is set by the reverse proxy in front of the API
	ip := c.GetHeader("X-Real-IP")
	if ip != "" {
		return ip
	}

	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		// X-Forwarded-For is a comma-separated list; the leftmost entry is the client
		ips := strings.Split(forwardedFor, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	return c.ClientIP()
}
