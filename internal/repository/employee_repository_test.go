package repository_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"

	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/repository"
)

type EmployeeRepositoryTestSuite struct {
	suite.Suite
	repo repository.EmployeeRepository
}

func (ts *EmployeeRepositoryTestSuite) SetupTest() {
	ts.repo = repository.NewEmployeeRepository(repository.SetupTestDatabase(ts.T()))
}

func TestEmployeeRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}

func sampleEmployee(id int64) *domain.Employee {
	return &domain.Employee{
		ID:          id,
		FirstName:   "Asha",
		LastName:    "Rao",
		Salary:      450000,
		Designation: "Engineer",
	}
}

func (ts *EmployeeRepositoryTestSuite) TestCreateAndGet() {
	ctx := context.Background()

	err := ts.repo.Create(ctx, sampleEmployee(1))
	ts.Require().NoError(err)

	got, err := ts.repo.GetByID(ctx, 1)
	ts.Require().NoError(err)
	ts.Require().Equal(int64(1), got.ID)
	ts.Require().Equal("Asha", got.FirstName)
	ts.Require().Equal("Rao", got.LastName)
	ts.Require().InDelta(450000, got.Salary, 1e-9)
	ts.Require().Equal("Engineer", got.Designation)
}

func (ts *EmployeeRepositoryTestSuite) TestCreateDuplicateID() {
	ctx := context.Background()

	err := ts.repo.Create(ctx, sampleEmployee(1))
	ts.Require().NoError(err)

	dup := sampleEmployee(1)
	dup.FirstName = "Imposter"
	err = ts.repo.Create(ctx, dup)
	ts.Require().Error(err)
	ts.Require().True(repository.IsUniqueViolation(err))

	got, err := ts.repo.GetByID(ctx, 1)
	ts.Require().NoError(err)
	ts.Require().Equal("Asha", got.FirstName, "original record must be untouched")
}

func (ts *EmployeeRepositoryTestSuite) TestUpdate() {
	ctx := context.Background()

	err := ts.repo.Create(ctx, sampleEmployee(1))
	ts.Require().NoError(err)

	ts.Run("existing_record", func() {
		err := ts.repo.Update(ctx, &domain.Employee{
			ID:          1,
			FirstName:   "Anita",
			LastName:    "Sen",
			Salary:      820000,
			Designation: "Manager",
		})
		ts.Require().NoError(err)

		got, err := ts.repo.GetByID(ctx, 1)
		ts.Require().NoError(err)
		ts.Require().Equal("Anita", got.FirstName)
		ts.Require().Equal("Sen", got.LastName)
		ts.Require().InDelta(820000, got.Salary, 1e-9)
		ts.Require().Equal("Manager", got.Designation)
	})

	ts.Run("missing_record", func() {
		err := ts.repo.Update(ctx, sampleEmployee(99))
		ts.Require().Error(err)
		ts.Require().Equal(pgx.ErrNoRows, err)
	})
}

func (ts *EmployeeRepositoryTestSuite) TestDelete() {
	ctx := context.Background()

	err := ts.repo.Create(ctx, sampleEmployee(1))
	ts.Require().NoError(err)

	err = ts.repo.Delete(ctx, 1)
	ts.Require().NoError(err)

	_, err = ts.repo.GetByID(ctx, 1)
	ts.Require().Error(err)
	ts.Require().Equal(pgx.ErrNoRows, err)

	err = ts.repo.Delete(ctx, 1)
	ts.Require().Error(err)
	ts.Require().Equal(pgx.ErrNoRows, err)
}

func (ts *EmployeeRepositoryTestSuite) TestListIdentifierOrder() {
	ctx := context.Background()

	for _, id := range []int64{3, 1, 2} {
		err := ts.repo.Create(ctx, sampleEmployee(id))
		ts.Require().NoError(err)
	}

	employees, err := ts.repo.List(ctx)
	ts.Require().NoError(err)
	ts.Require().Len(employees, 3)
	ts.Require().Equal(int64(1), employees[0].ID)
	ts.Require().Equal(int64(2), employees[1].ID)
	ts.Require().Equal(int64(3), employees[2].ID)
}
