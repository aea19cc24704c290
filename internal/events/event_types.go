package events

import (
	"time"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated   EventType = "employee_created"
	EventEmployeeUpdated   EventType = "employee_updated"
	EventEmployeeDeleted   EventType = "employee_deleted"
	EventVisitorRegistered EventType = "visitor_registered"
)

// Actor captures who triggered an event.
type Actor struct {
	Role domain.Role `json:"role"`
	Name string      `json:"name,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeePayload accompanies the employee lifecycle events.
type EmployeePayload struct {
	EmployeeID  int64  `json:"employee_id"`
	Designation string `json:"designation,omitempty"`
}

// VisitorRegisteredPayload accompanies visitor registrations.
type VisitorRegisteredPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
