package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	rate, err := decimal.NewFromString(req.HourlyRate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to parse hourly rate: %w", err)
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	return s.EmployeeRepository.Create(ctx, employee.Employee{
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Position:    req.Position,
		Phone:       req.Phone,
		HourlyRate:  rate,
		HireDate:    hireDate,
		IsActive:    true,
	})
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx, activeOnly)
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	existing, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.DisplayName != nil {
		existing.DisplayName = *req.DisplayName
	}
	if req.Position != nil {
		existing.Position = *req.Position
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.HourlyRate != nil {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse hourly rate: %w", err)
		}
		existing.HourlyRate = rate
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.EmployeeRepository.Update(ctx, existing); err != nil {
		return employee.Employee{}, err
	}

	return s.EmployeeRepository.GetByID(ctx, req.ID)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}
