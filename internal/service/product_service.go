package service

import (
	"context"

	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/repository"
)

// ProductService - бизнес-логика для товаров
type ProductService struct {
	Crud[domain.Product]
	products     *repository.ProductRepository
	productLines *repository.ProductLineRepository
}

// NewProductService создаёт новый экземпляр сервиса
func NewProductService(products *repository.ProductRepository, productLines *repository.ProductLineRepository) *ProductService {
	return &ProductService{
		Crud:         NewCrud(products.Base),
		products:     products,
		productLines: productLines,
	}
}

// ByProductLine возвращает товары линейки
func (s *ProductService) ByProductLine(ctx context.Context, productLine string) ([]domain.Product, error) {
	// Проверяем существование линейки
	if _, err := s.productLines.GetByKey(ctx, productLine); err != nil {
		return nil, err
	}
	return s.products.GetByProductLine(ctx, productLine)
}
