package service_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/events"
	"github.com/spec-kit/employee-directory/internal/service"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

// memEmployeeRepo mimics the store contract: the primary key rejects
// duplicate ids and update/delete on a missing row report pgx.ErrNoRows.
type memEmployeeRepo struct {
	mu      sync.Mutex
	records map[int64]domain.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{records: make(map[int64]domain.Employee)}
}

func (r *memEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[emp.ID]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "employees_pkey"}
	}
	r.records[emp.ID] = *emp
	return nil
}

func (r *memEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[emp.ID]; !exists {
		return pgx.ErrNoRows
	}
	r.records[emp.ID] = *emp
	return nil
}

func (r *memEmployeeRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[id]; !exists {
		return pgx.ErrNoRows
	}
	delete(r.records, id)
	return nil
}

func (r *memEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	emp, exists := r.records[id]
	if !exists {
		return nil, pgx.ErrNoRows
	}
	return &emp, nil
}

func (r *memEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Employee, 0, len(r.records))
	for _, emp := range r.records {
		result = append(result, emp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func newDirectoryService(repo *memEmployeeRepo) *service.DirectoryService {
	return service.NewDirectoryService(repo, events.NewInMemoryDispatcher(), zap.NewNop())
}

func adminActor() events.Actor {
	return events.Actor{Role: domain.RoleAdmin, Name: "admin"}
}

func validForm() service.EmployeeForm {
	return service.EmployeeForm{
		ID:          "7",
		FirstName:   "Asha",
		LastName:    "Rao",
		Salary:      "450000",
		Designation: "Engineer",
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := newDirectoryService(newMemEmployeeRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, adminActor(), validForm())
	require.NoError(t, err)

	got, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Asha", got.FirstName)
	assert.Equal(t, "Rao", got.LastName)
	assert.InDelta(t, 450000, got.Salary, 1e-9)
	assert.Equal(t, "Engineer", got.Designation)
}

func TestCreateValidation(t *testing.T) {
	svc := newDirectoryService(newMemEmployeeRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*service.EmployeeForm)
	}{
		{"non-integer id", func(f *service.EmployeeForm) { f.ID = "abc" }},
		{"empty first name", func(f *service.EmployeeForm) { f.FirstName = "  " }},
		{"empty last name", func(f *service.EmployeeForm) { f.LastName = "" }},
		{"empty designation", func(f *service.EmployeeForm) { f.Designation = "" }},
		{"non-numeric salary", func(f *service.EmployeeForm) { f.Salary = "lots" }},
		{"negative salary", func(f *service.EmployeeForm) { f.Salary = "-1" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			_, err := svc.Create(ctx, adminActor(), form)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
		})
	}

	_, err := svc.Get(ctx, 7)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"), "validation failures must not create records")
}

func TestCreateDuplicateIDFailsAndPreservesOriginal(t *testing.T) {
	svc := newDirectoryService(newMemEmployeeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, adminActor(), validForm())
	require.NoError(t, err)

	dup := validForm()
	dup.FirstName = "Imposter"
	_, err = svc.Create(ctx, adminActor(), dup)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))

	got, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.FirstName)
}

func TestUpdateOverwritesAllMutableFields(t *testing.T) {
	svc := newDirectoryService(newMemEmployeeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, adminActor(), validForm())
	require.NoError(t, err)

	_, err = svc.Update(ctx, adminActor(), 7, service.EmployeeForm{
		FirstName:   "Anita",
		LastName:    "Sen",
		Salary:      "820000",
		Designation: "Manager",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Anita", got.FirstName)
	assert.Equal(t, "Sen", got.LastName)
	assert.InDelta(t, 820000, got.Salary, 1e-9)
	assert.Equal(t, "Manager", got.Designation)
}

func TestUpdateMissingRecord(t *testing.T) {
	svc := newDirectoryService(newMemEmployeeRepo())

	_, err := svc.Update(context.Background(), adminActor(), 42, service.EmployeeForm{
		FirstName:   "Nobody",
		LastName:    "Here",
		Salary:      "1",
		Designation: "Ghost",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestDeleteMissingRecordFails(t *testing.T) {
	svc := newDirectoryService(newMemEmployeeRepo())

	err := svc.Delete(context.Background(), adminActor(), 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestDeleteExistingThenGetAbsent(t *testing.T) {
	svc := newDirectoryService(newMemEmployeeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, adminActor(), validForm())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, adminActor(), 7))

	_, err = svc.Get(ctx, 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestListReturnsIdentifierOrder(t *testing.T) {
	svc := newDirectoryService(newMemEmployeeRepo())
	ctx := context.Background()

	for _, id := range []string{"3", "1", "2"} {
		form := validForm()
		form.ID = id
		_, err := svc.Create(ctx, adminActor(), form)
		require.NoError(t, err)
	}

	employees, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Equal(t, int64(1), employees[0].ID)
	assert.Equal(t, int64(2), employees[1].ID)
	assert.Equal(t, int64(3), employees[2].ID)
}
