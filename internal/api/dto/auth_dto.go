package dto

import (
	"time"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// LoginRequest payload for admin login. Phone is used in table auth mode,
// password in static mode.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Phone    string `json:"phone" form:"phone"`
}

// VisitRequest payload for visitor self-registration.
type VisitRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Phone string `json:"phone" form:"phone"`
}

// SessionResponse describes the opened session.
type SessionResponse struct {
	Role      domain.Role `json:"role"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"created_at"`
}

// VisitorLogEntryResponse is the read representation of a visit.
type VisitorLogEntryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVisitorLogEntryResponses maps the domain models.
func NewVisitorLogEntryResponses(entries []domain.VisitorLogEntry) []VisitorLogEntryResponse {
	result := make([]VisitorLogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, VisitorLogEntryResponse{
			ID:        entry.ID,
			Name:      entry.Name,
			Email:     entry.Email,
			Phone:     entry.Phone,
			CreatedAt: entry.CreatedAt,
		})
	}
	return result
}
