package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/report"
	"github.com/spec-kit/employee-directory/internal/repository"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

// ReportService produces the dashboard aggregates. It pulls the full
// employee set fresh on every invocation; nothing is cached.
type ReportService struct {
	employees repository.EmployeeRepository
	logger    *zap.Logger
}

// NewReportService builds the service.
func NewReportService(employees repository.EmployeeRepository, logger *zap.Logger) *ReportService {
	return &ReportService{employees: employees, logger: logger}
}

// Dashboard summarizes the current employee set.
func (s *ReportService) Dashboard(ctx context.Context) (report.Summary, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		s.logger.Error("list employees for dashboard", zap.Error(err))
		return report.Summary{}, apperrors.NewInternalError(err)
	}
	return report.Summarize(employees), nil
}
