package service

import (
	"context"

	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/repository"
)

// OrderDetailService - бизнес-логика для позиций заказа
type OrderDetailService struct {
	details *repository.OrderDetailRepository
	orders  *repository.OrderRepository
}

// NewOrderDetailService создаёт новый экземпляр сервиса
func NewOrderDetailService(details *repository.OrderDetailRepository, orders *repository.OrderRepository) *OrderDetailService {
	return &OrderDetailService{details: details, orders: orders}
}

// Get возвращает позицию по составному ключу
func (s *OrderDetailService) Get(ctx context.Context, orderNumber int, productCode string) (*domain.OrderDetail, error) {
	return s.details.GetByKey(ctx, orderNumber, productCode)
}

// ByOrder возвращает позиции заказа
func (s *OrderDetailService) ByOrder(ctx context.Context, orderNumber int) ([]domain.OrderDetail, error) {
	// Проверяем существование заказа
	if _, err := s.orders.GetByKey(ctx, orderNumber); err != nil {
		return nil, err
	}
	return s.details.GetByOrderNumber(ctx, orderNumber)
}

// Create сохраняет новую позицию заказа
func (s *OrderDetailService) Create(ctx context.Context, detail *domain.OrderDetail) error {
	return s.details.Create(ctx, detail)
}

// Update применяет частичное обновление позиции
func (s *OrderDetailService) Update(ctx context.Context, orderNumber int, productCode string, patch map[string]any) (*domain.OrderDetail, error) {
	return s.details.Update(ctx, orderNumber, productCode, patch)
}

// Delete удаляет позицию заказа
func (s *OrderDetailService) Delete(ctx context.Context, orderNumber int, productCode string) error {
	return s.details.Delete(ctx, orderNumber, productCode)
}
