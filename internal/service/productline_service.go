package service

import (
	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/repository"
)

// ProductLineService - бизнес-логика для линеек товаров
type ProductLineService struct {
	Crud[domain.ProductLine]
}

// NewProductLineService создаёт новый экземпляр сервиса
func NewProductLineService(productLines *repository.ProductLineRepository) *ProductLineService {
	return &ProductLineService{Crud: NewCrud(productLines.Base)}
}
