package service

import (
	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/repository"
)

// OfficeService - бизнес-логика для офисов
type OfficeService struct {
	Crud[domain.Office]
}

// NewOfficeService создаёт новый экземпляр сервиса
func NewOfficeService(offices *repository.OfficeRepository) *OfficeService {
	return &OfficeService{Crud: NewCrud(offices.Base)}
}
