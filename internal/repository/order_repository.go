package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/classicmodels-api/internal/domain"
)

// OrderRepository - доступ к заказам
type OrderRepository struct {
	*Base[domain.Order]
}

// NewOrderRepository создаёт новый экземпляр репозитория
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{NewBase[domain.Order](db, "order_number", domain.ErrOrderNotFound)}
}

// GetByCustomerNumber возвращает заказы клиента
func (r *OrderRepository) GetByCustomerNumber(ctx context.Context, customerNumber int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.DB().WithContext(ctx).
		Where("customer_number = ?", customerNumber).
		Find(&orders).Error
	return orders, err
}
