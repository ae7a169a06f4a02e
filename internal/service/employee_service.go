package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/repository"
	apperrors "github.com/spec-kit/employee-directory/pkg/util/errorutil"
)

// EmployeeService serves the read-only directory.
type EmployeeService struct {
	employees repository.EmployeeRepository
	logger    *zap.Logger
}

// NewEmployeeService constructs the service.
func NewEmployeeService(employees repository.EmployeeRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, logger: logger}
}

// List returns directory entries ordered by employee id.
func (s *EmployeeService) List(ctx context.Context, search string) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx, repository.EmployeeFilter{Search: search})
	if err != nil {
		s.logger.Error("employee listing failed", zap.Error(err))
		return nil, apperrors.NewUpstreamError("", err)
	}
	return employees, nil
}
