package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/events"
	"github.com/spec-kit/employee-directory/internal/repository"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

// EmployeeForm carries raw field values as submitted by the client. The
// service owns parsing and validation so every caller gets the same rules.
type EmployeeForm struct {
	ID          string
	FirstName   string
	LastName    string
	Salary      string
	Designation string
}

// DirectoryService coordinates employee CRUD against the record store. Every
// operation returns a typed outcome: nil, VALIDATION_FAILED, NOT_FOUND,
// CONFLICT, or INTERNAL_ERROR. Raw store errors never cross this boundary.
type DirectoryService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewDirectoryService builds the service.
func NewDirectoryService(employees repository.EmployeeRepository, dispatcher events.Dispatcher, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{employees: employees, dispatcher: dispatcher, logger: logger}
}

// Create validates the form and inserts a new record. Identifier uniqueness
// is enforced by the store's primary key, not by a pre-check, so concurrent
// creates with a colliding id result in exactly one success.
func (s *DirectoryService) Create(ctx context.Context, actor events.Actor, form EmployeeForm) (*domain.Employee, error) {
	emp, err := parseEmployeeForm(form, true)
	if err != nil {
		return nil, err
	}

	if err := s.employees.Create(ctx, emp); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("employee id already exists", map[string]any{"id": emp.ID})
		}
		s.logger.Error("create employee", zap.Int64("id", emp.ID), zap.Error(err))
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventEmployeeCreated, actor, emp)
	return emp, nil
}

// Update overwrites the four mutable fields of an existing record in a
// single statement; a reader never observes a partial update.
func (s *DirectoryService) Update(ctx context.Context, actor events.Actor, id int64, form EmployeeForm) (*domain.Employee, error) {
	emp, err := parseEmployeeForm(form, false)
	if err != nil {
		return nil, err
	}
	emp.ID = id

	if err := s.employees.Update(ctx, emp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		s.logger.Error("update employee", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventEmployeeUpdated, actor, emp)
	return emp, nil
}

// Delete removes the record. Deleting a missing id is a NOT_FOUND failure,
// not a silent success.
func (s *DirectoryService) Delete(ctx context.Context, actor events.Actor, id int64) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		s.logger.Error("delete employee", zap.Int64("id", id), zap.Error(err))
		return apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventEmployeeDeleted, actor, &domain.Employee{ID: id})
	return nil
}

// Get returns the record or NOT_FOUND; absence is never an internal error.
func (s *DirectoryService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		s.logger.Error("get employee", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.NewInternalError(err)
	}
	return emp, nil
}

// List returns every record in identifier order.
func (s *DirectoryService) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		s.logger.Error("list employees", zap.Error(err))
		return nil, apperrors.NewInternalError(err)
	}
	return employees, nil
}

func (s *DirectoryService) publish(ctx context.Context, eventType events.EventType, actor events.Actor, emp *domain.Employee) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload: events.EmployeePayload{
			EmployeeID:  emp.ID,
			Designation: emp.Designation,
		},
	})
}

func parseEmployeeForm(form EmployeeForm, requireID bool) (*domain.Employee, error) {
	details := map[string]any{}

	var id int64
	if requireID {
		parsed, err := strconv.ParseInt(strings.TrimSpace(form.ID), 10, 64)
		if err != nil {
			details["id"] = "must be an integer"
		} else {
			id = parsed
		}
	}

	firstName := strings.TrimSpace(form.FirstName)
	if firstName == "" {
		details["first_name"] = "required"
	}
	lastName := strings.TrimSpace(form.LastName)
	if lastName == "" {
		details["last_name"] = "required"
	}
	designation := strings.TrimSpace(form.Designation)
	if designation == "" {
		details["designation"] = "required"
	}

	salary, err := strconv.ParseFloat(strings.TrimSpace(form.Salary), 64)
	if err != nil {
		details["salary"] = "must be a number"
	} else if salary < 0 {
		details["salary"] = "must not be negative"
	}

	if len(details) > 0 {
		return nil, apperrors.NewValidationError("Invalid input.", details)
	}

	return &domain.Employee{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		Salary:      salary,
		Designation: designation,
	}, nil
}
