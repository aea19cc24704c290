package dto

import "github.com/spec-kit/employee-directory/internal/domain"

// EmployeeFormRequest carries the raw employee form fields. Field names
// follow the submitted form.
type EmployeeFormRequest struct {
	ID          string `json:"id" form:"id"`
	FirstName   string `json:"firstName" form:"firstName"`
	LastName    string `json:"lastName" form:"lastName"`
	Salary      string `json:"salary" form:"salary"`
	Designation string `json:"designation" form:"designation"`
}

// EmployeeResponse is the read representation of a record.
type EmployeeResponse struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Salary      float64 `json:"salary"`
	Designation string  `json:"designation"`
}

// NewEmployeeResponse maps the domain model.
func NewEmployeeResponse(emp domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          emp.ID,
		FirstName:   emp.FirstName,
		LastName:    emp.LastName,
		Salary:      emp.Salary,
		Designation: emp.Designation,
	}
}

// NewEmployeeResponses maps a slice of domain models.
func NewEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	result := make([]EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, NewEmployeeResponse(emp))
	}
	return result
}
