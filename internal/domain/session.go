package domain

import "time"

// Role is the permission level attached to a session.
type Role string

const (
	RoleAnonymous Role = "ANONYMOUS"
	RoleVisitor   Role = "VISITOR"
	RoleAdmin     Role = "ADMIN"
)

// Session is the server-side state for one authenticated client. It lives in
// the session store under an opaque id and expires after the configured idle
// TTL; only the id travels to the client, wrapped in a signed cookie.
type Session struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
