package service

import (
	"context"

	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/repository"
)

// PaymentService - бизнес-логика для платежей
type PaymentService struct {
	payments  *repository.PaymentRepository
	customers *repository.CustomerRepository
}

// NewPaymentService создаёт новый экземпляр сервиса
func NewPaymentService(payments *repository.PaymentRepository, customers *repository.CustomerRepository) *PaymentService {
	return &PaymentService{payments: payments, customers: customers}
}

// Get возвращает платёж по составному ключу
func (s *PaymentService) Get(ctx context.Context, customerNumber int, checkNumber string) (*domain.Payment, error) {
	return s.payments.GetByKey(ctx, customerNumber, checkNumber)
}

// ByCustomer возвращает платежи клиента
func (s *PaymentService) ByCustomer(ctx context.Context, customerNumber int) ([]domain.Payment, error) {
	// Проверяем существование клиента
	if _, err := s.customers.GetByKey(ctx, customerNumber); err != nil {
		return nil, err
	}
	return s.payments.GetByCustomerNumber(ctx, customerNumber)
}

// Create сохраняет новый платёж
func (s *PaymentService) Create(ctx context.Context, payment *domain.Payment) error {
	return s.payments.Create(ctx, payment)
}

// Update применяет частичное обновление платежа
func (s *PaymentService) Update(ctx context.Context, customerNumber int, checkNumber string, patch map[string]any) (*domain.Payment, error) {
	return s.payments.Update(ctx, customerNumber, checkNumber, patch)
}

// Delete удаляет платёж
func (s *PaymentService) Delete(ctx context.Context, customerNumber int, checkNumber string) error {
	return s.payments.Delete(ctx, customerNumber, checkNumber)
}
