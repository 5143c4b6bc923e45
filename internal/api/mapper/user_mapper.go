package mapper

import (
	"leadportaal/internal/api/dto/v1/auth"
	"leadportaal/internal/models"
)

// UserToSessionResponse converts a domain User model to a SessionResponse DTO
func UserToSessionResponse(u *models.User) *auth.SessionResponse {
	if u == nil {
		return nil
	}

	resp := &auth.SessionResponse{
		Username: u.Username,
		Role:     string(u.Role),
	}
	if !u.LastLogin.IsZero() {
		t := u.LastLogin
		resp.LastLogin = &t
	}
	return resp
}
