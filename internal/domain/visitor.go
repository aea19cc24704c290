package domain

import "time"

// VisitorLogEntry records a visitor self-registration. The log is
// append-only; entries are never updated or deleted.
type VisitorLogEntry struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
