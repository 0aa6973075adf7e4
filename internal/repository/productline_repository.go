package repository

import (
	"gorm.io/gorm"

	"github.com/classicmodels-api/internal/domain"
)

// ProductLineRepository - доступ к линейкам товаров
type ProductLineRepository struct {
	*Base[domain.ProductLine]
}

// NewProductLineRepository создаёт новый экземпляр репозитория
func NewProductLineRepository(db *gorm.DB) *ProductLineRepository {
	return &ProductLineRepository{NewBase[domain.ProductLine](db, "product_line", domain.ErrProductLineNotFound)}
}
