package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/classicmodels-api/internal/domain"
)

// PaymentRepository - доступ к платежам. Составной ключ
// (customerNumber, checkNumber), операции определены явно
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository создаёт новый экземпляр репозитория
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// GetByKey возвращает платёж по составному ключу
func (r *PaymentRepository) GetByKey(ctx context.Context, customerNumber int, checkNumber string) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.WithContext(ctx).
		Where("customer_number = ? AND check_number = ?", customerNumber, checkNumber).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// GetByCustomerNumber возвращает все платежи клиента
func (r *PaymentRepository) GetByCustomerNumber(ctx context.Context, customerNumber int) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("customer_number = ?", customerNumber).
		Find(&payments).Error
	return payments, err
}

// Create сохраняет новый платёж
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return translateError(r.db.WithContext(ctx).Create(payment).Error)
}

// Update применяет частичное обновление по составному ключу
func (r *PaymentRepository) Update(ctx context.Context, customerNumber int, checkNumber string, patch map[string]any) (*domain.Payment, error) {
	payment, err := r.GetByKey(ctx, customerNumber, checkNumber)
	if err != nil {
		return nil, err
	}

	if len(patch) > 0 {
		err := r.db.WithContext(ctx).
			Model(payment).
			Where("customer_number = ? AND check_number = ?", customerNumber, checkNumber).
			Updates(patch).Error
		if err != nil {
			return nil, translateError(err)
		}
	}

	return r.GetByKey(ctx, customerNumber, checkNumber)
}

// Delete удаляет платёж
func (r *PaymentRepository) Delete(ctx context.Context, customerNumber int, checkNumber string) error {
	result := r.db.WithContext(ctx).
		Where("customer_number = ? AND check_number = ?", customerNumber, checkNumber).
		Delete(&domain.Payment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}
