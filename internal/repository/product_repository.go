package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/classicmodels-api/internal/domain"
)

// ProductRepository - доступ к товарам
type ProductRepository struct {
	*Base[domain.Product]
}

// NewProductRepository создаёт новый экземпляр репозитория
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{NewBase[domain.Product](db, "product_code", domain.ErrProductNotFound)}
}

// GetByProductLine возвращает товары линейки
func (r *ProductRepository) GetByProductLine(ctx context.Context, productLine string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.DB().WithContext(ctx).
		Where("product_line = ?", productLine).
		Find(&products).Error
	return products, err
}
