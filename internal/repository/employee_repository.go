package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/classicmodels-api/internal/domain"
)

// EmployeeRepository - доступ к сотрудникам
type EmployeeRepository struct {
	*Base[domain.Employee]
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{NewBase[domain.Employee](db, "employee_number", domain.ErrEmployeeNotFound)}
}

// GetByOfficeCode возвращает сотрудников офиса
func (r *EmployeeRepository) GetByOfficeCode(ctx context.Context, officeCode string) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.DB().WithContext(ctx).
		Where("office_code = ?", officeCode).
		Find(&employees).Error
	return employees, err
}
