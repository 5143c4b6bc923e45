package utils

import (
	"net/url"
	"os"
	"strings"
)

// GetCookieDomain returns the domain attribute for the session cookie. In
// production the cookie is scoped to the root domain of CLIENT_URL so the
// dashboard can live on a subdomain; everywhere else the attribute is empty
// and the cookie stays host-only.
func GetCookieDomain() string {
	env := os.Getenv("ENV")
	clientURL := os.Getenv("CLIENT_URL")

	if env != "production" || clientURL == "" {
		return ""
	}

	parsableURL := clientURL
	if !strings.HasPrefix(parsableURL, "http://") && !strings.HasPrefix(parsableURL, "https://") {
		parsableURL = "https://" + parsableURL
	}

	parsedURL, err := url.Parse(parsableURL)
	if err != nil {
		return ""
	}

	host := parsedURL.Hostname()
	if host == "" || host == "localhost" || host == "127.0.0.1" {
		return ""
	}

	parts := strings.Split(host, ".")
	if len(parts) >= 3 && parts[0] == "www" {
		parts = parts[1:]
	}
	if len(parts) >= 2 {
		// Leading dot so the cookie is shared between www and the bare domain
		return "." + parts[len(parts)-2] + "." + parts[len(parts)-1]
	}

	return host
}
