package service

import (
	"context"

	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/repository"
)

// EmployeeService - бизнес-логика для сотрудников
type EmployeeService struct {
	Crud[domain.Employee]
	employees *repository.EmployeeRepository
	offices   *repository.OfficeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(employees *repository.EmployeeRepository, offices *repository.OfficeRepository) *EmployeeService {
	return &EmployeeService{
		Crud:      NewCrud(employees.Base),
		employees: employees,
		offices:   offices,
	}
}

// ByOffice возвращает сотрудников офиса
func (s *EmployeeService) ByOffice(ctx context.Context, officeCode string) ([]domain.Employee, error) {
	// Проверяем существование офиса
	if _, err := s.offices.GetByKey(ctx, officeCode); err != nil {
		return nil, err
	}
	return s.employees.GetByOfficeCode(ctx, officeCode)
}
