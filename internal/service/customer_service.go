package service

import (
	"context"

	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/repository"
)

// CustomerService - бизнес-логика для клиентов
type CustomerService struct {
	Crud[domain.Customer]
	customers *repository.CustomerRepository
	orders    *repository.OrderRepository
}

// NewCustomerService создаёт новый экземпляр сервиса
func NewCustomerService(customers *repository.CustomerRepository, orders *repository.OrderRepository) *CustomerService {
	return &CustomerService{
		Crud:      NewCrud(customers.Base),
		customers: customers,
		orders:    orders,
	}
}

// Orders возвращает заказы клиента
func (s *CustomerService) Orders(ctx context.Context, customerNumber int) ([]domain.Order, error) {
	// Проверяем существование клиента
	if _, err := s.customers.GetByKey(ctx, customerNumber); err != nil {
		return nil, err
	}
	return s.orders.GetByCustomerNumber(ctx, customerNumber)
}
