package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/dto"
	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/events"
	"github.com/spec-kit/employee-directory/internal/service"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

// EmployeesHandler exposes the directory CRUD surface. Mutations follow the
// form-post-then-redirect flow: failures flash a notice and send the caller
// back, successes flash and redirect to the listing.
type EmployeesHandler struct {
	directory *service.DirectoryService
	sessions  auth.SessionStore
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(directory *service.DirectoryService, sessions auth.SessionStore) *EmployeesHandler {
	return &EmployeesHandler{directory: directory, sessions: sessions}
}

// List handles GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.directory.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data":   dto.NewEmployeeResponses(employees),
		"notice": h.takeFlash(c),
	})
}

// Get handles GET /employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	emp, err := h.directory.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(*emp)})
}

// AddView handles GET /employees/add.
func (h *EmployeesHandler) AddView(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"fields": []string{"id", "firstName", "lastName", "salary", "designation"},
		"notice": h.takeFlash(c),
	})
}

// EditView handles GET /employees/:id/edit. A missing record flashes and
// returns the caller to the listing, mirroring the add/edit page flow.
func (h *EmployeesHandler) EditView(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	emp, err := h.directory.Get(c.Context(), id)
	if err != nil {
		if apperrors.IsCode(err, "NOT_FOUND") {
			h.flash(c, "Employee not found.")
			return c.Redirect("/employees", fiber.StatusFound)
		}
		return err
	}

	return c.JSON(fiber.Map{
		"data":   dto.NewEmployeeResponse(*emp),
		"notice": h.takeFlash(c),
	})
}

// Create handles POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeFormRequest
	if err := c.BodyParser(&req); err != nil {
		h.flash(c, "Invalid input.")
		return c.Redirect("/employees/add", fiber.StatusFound)
	}

	_, err := h.directory.Create(c.Context(), h.actor(c), service.EmployeeForm{
		ID:          req.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Salary:      req.Salary,
		Designation: req.Designation,
	})
	switch {
	case err == nil:
		h.flash(c, "Employee added successfully!")
	case apperrors.IsCode(err, "VALIDATION_FAILED"):
		h.flash(c, "Invalid input.")
		return c.Redirect("/employees/add", fiber.StatusFound)
	default:
		h.flash(c, "Failed to add employee.")
	}
	return c.Redirect("/employees", fiber.StatusFound)
}

// Update handles POST /employees/:id/edit.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.EmployeeFormRequest
	if err := c.BodyParser(&req); err != nil {
		h.flash(c, "Invalid input.")
		return c.Redirect("/employees/"+strconv.FormatInt(id, 10)+"/edit", fiber.StatusFound)
	}

	_, err = h.directory.Update(c.Context(), h.actor(c), id, service.EmployeeForm{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Salary:      req.Salary,
		Designation: req.Designation,
	})
	switch {
	case err == nil:
		h.flash(c, "Employee updated successfully!")
	case apperrors.IsCode(err, "VALIDATION_FAILED"):
		h.flash(c, "Invalid input.")
		return c.Redirect("/employees/"+strconv.FormatInt(id, 10)+"/edit", fiber.StatusFound)
	case apperrors.IsCode(err, "NOT_FOUND"):
		h.flash(c, "Employee not found.")
	default:
		h.flash(c, "Failed to update employee.")
	}
	return c.Redirect("/employees", fiber.StatusFound)
}

// Delete handles POST /employees/:id/delete. Deleting a missing id flashes a
// failure, never a success.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.directory.Delete(c.Context(), h.actor(c), id); err != nil {
		h.flash(c, "Failed to delete employee.")
	} else {
		h.flash(c, "Employee deleted.")
	}
	return c.Redirect("/employees", fiber.StatusFound)
}

func (h *EmployeesHandler) actor(c *fiber.Ctx) events.Actor {
	principal := auth.PrincipalFromContext(c)
	actor := events.Actor{Role: principal.Role}
	if principal.Session != nil {
		actor.Name = principal.Session.Name
	}
	return actor
}

func (h *EmployeesHandler) flash(c *fiber.Ctx, notice string) {
	principal := auth.PrincipalFromContext(c)
	if principal.Session == nil {
		return
	}
	_ = h.sessions.PutFlash(c.Context(), principal.Session.ID, notice)
}

func (h *EmployeesHandler) takeFlash(c *fiber.Ctx) string {
	principal := auth.PrincipalFromContext(c)
	if principal.Session == nil {
		return ""
	}
	notice, _ := h.sessions.TakeFlash(c.Context(), principal.Session.ID)
	return notice
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid employee id", nil)
	}
	return id, nil
}
