package repository

import (
	"gorm.io/gorm"

	"github.com/classicmodels-api/internal/domain"
)

// CustomerRepository - доступ к клиентам
type CustomerRepository struct {
	*Base[domain.Customer]
}

// NewCustomerRepository создаёт новый экземпляр репозитория
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{NewBase[domain.Customer](db, "customer_number", domain.ErrCustomerNotFound)}
}
