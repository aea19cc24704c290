package domain

// Employee is the domain model for a directory record. The identifier is
// assigned by the caller, not generated by the store.
type Employee struct {
	ID          int64
	FirstName   string
	LastName    string
	Salary      float64
	Designation string
}
