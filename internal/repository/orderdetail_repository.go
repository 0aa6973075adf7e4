package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/classicmodels-api/internal/domain"
)

// OrderDetailRepository - доступ к позициям заказа. Составной ключ
// (orderNumber, productCode) не укладывается в обобщённый Base,
// поэтому операции определены явно
type OrderDetailRepository struct {
	db *gorm.DB
}

// NewOrderDetailRepository создаёт новый экземпляр репозитория
func NewOrderDetailRepository(db *gorm.DB) *OrderDetailRepository {
	return &OrderDetailRepository{db: db}
}

// GetByKey возвращает позицию по составному ключу
func (r *OrderDetailRepository) GetByKey(ctx context.Context, orderNumber int, productCode string) (*domain.OrderDetail, error) {
	var detail domain.OrderDetail
	err := r.db.WithContext(ctx).
		Where("order_number = ? AND product_code = ?", orderNumber, productCode).
		First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderDetailNotFound
		}
		return nil, err
	}
	return &detail, nil
}

// GetByOrderNumber возвращает все позиции заказа
func (r *OrderDetailRepository) GetByOrderNumber(ctx context.Context, orderNumber int) ([]domain.OrderDetail, error) {
	var details []domain.OrderDetail
	err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		Find(&details).Error
	return details, err
}

// Create сохраняет новую позицию заказа
func (r *OrderDetailRepository) Create(ctx context.Context, detail *domain.OrderDetail) error {
	return translateError(r.db.WithContext(ctx).Create(detail).Error)
}

// Update применяет частичное обновление по составному ключу
func (r *OrderDetailRepository) Update(ctx context.Context, orderNumber int, productCode string, patch map[string]any) (*domain.OrderDetail, error) {
	detail, err := r.GetByKey(ctx, orderNumber, productCode)
	if err != nil {
		return nil, err
	}

	if len(patch) > 0 {
		err := r.db.WithContext(ctx).
			Model(detail).
			Where("order_number = ? AND product_code = ?", orderNumber, productCode).
			Updates(patch).Error
		if err != nil {
			return nil, translateError(err)
		}
	}

	return r.GetByKey(ctx, orderNumber, productCode)
}

// Delete удаляет позицию заказа
func (r *OrderDetailRepository) Delete(ctx context.Context, orderNumber int, productCode string) error {
	result := r.db.WithContext(ctx).
		Where("order_number = ? AND product_code = ?", orderNumber, productCode).
		Delete(&domain.OrderDetail{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderDetailNotFound
	}
	return nil
}
