package repository

import (
	"gorm.io/gorm"

	"github.com/classicmodels-api/internal/domain"
)

// OfficeRepository - доступ к офисам
type OfficeRepository struct {
	*Base[domain.Office]
}

// NewOfficeRepository создаёт новый экземпляр репозитория
func NewOfficeRepository(db *gorm.DB) *OfficeRepository {
	return &OfficeRepository{NewBase[domain.Office](db, "office_code", domain.ErrOfficeNotFound)}
}
