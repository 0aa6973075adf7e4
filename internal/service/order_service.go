package service

import (
	"context"

	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/repository"
)

// OrderService - бизнес-логика для заказов
type OrderService struct {
	Crud[domain.Order]
	orders    *repository.OrderRepository
	details   *repository.OrderDetailRepository
	customers *repository.CustomerRepository
}

// NewOrderService создаёт новый экземпляр сервиса
func NewOrderService(orders *repository.OrderRepository, details *repository.OrderDetailRepository, customers *repository.CustomerRepository) *OrderService {
	return &OrderService{
		Crud:      NewCrud(orders.Base),
		orders:    orders,
		details:   details,
		customers: customers,
	}
}

// Details возвращает позиции заказа
func (s *OrderService) Details(ctx context.Context, orderNumber int) ([]domain.OrderDetail, error) {
	// Проверяем существование заказа
	if _, err := s.orders.GetByKey(ctx, orderNumber); err != nil {
		return nil, err
	}
	return s.details.GetByOrderNumber(ctx, orderNumber)
}

// ByCustomer возвращает заказы клиента
func (s *OrderService) ByCustomer(ctx context.Context, customerNumber int) ([]domain.Order, error) {
	// Проверяем существование клиента
	if _, err := s.customers.GetByKey(ctx, customerNumber); err != nil {
		return nil, err
	}
	return s.orders.GetByCustomerNumber(ctx, customerNumber)
}
