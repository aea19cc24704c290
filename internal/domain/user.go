package domain

// User is an account row in the users table. It is used only to authenticate
// and derive a role; this service never mutates it.
type User struct {
	ID    int64
	Name  string
	Email string
	Phone string
	Admin bool
}
