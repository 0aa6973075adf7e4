package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/classicmodels-api/internal/domain"
)

// Base реализует обобщённые CRUD-операции для сущностей
// с одноколоночным первичным ключом
type Base[T any] struct {
	db       *gorm.DB
	pkColumn string
	notFound error
}

// NewBase создаёт обобщённый репозиторий для типа T.
// pkColumn - имя колонки первичного ключа, notFound - ошибка,
// возвращаемая при отсутствии записи
func NewBase[T any](db *gorm.DB, pkColumn string, notFound error) *Base[T] {
	return &Base[T]{db: db, pkColumn: pkColumn, notFound: notFound}
}

// DB возвращает подключение для специализированных запросов
func (b *Base[T]) DB() *gorm.DB {
	return b.db
}

// ListAll возвращает до limit записей, пропустив offset
func (b *Base[T]) ListAll(ctx context.Context, offset, limit int) ([]T, error) {
	var items []T
	err := b.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&items).Error
	return items, err
}

// ListPaginated возвращает страницу записей вместе с общим
// количеством и числом страниц. Страница за пределами данных
// возвращает пустой список без ошибки
func (b *Base[T]) ListPaginated(ctx context.Context, page, size int) ([]T, int64, int, error) {
	var model T
	var total int64
	if err := b.db.WithContext(ctx).Model(&model).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	pages := int((total + int64(size) - 1) / int64(size))

	var items []T
	err := b.db.WithContext(ctx).
		Offset((page - 1) * size).
		Limit(size).
		Find(&items).Error
	if err != nil {
		return nil, 0, 0, err
	}

	return items, total, pages, nil
}

// GetByKey возвращает запись по первичному ключу
func (b *Base[T]) GetByKey(ctx context.Context, key any) (*T, error) {
	var item T
	err := b.db.WithContext(ctx).Where(b.pkColumn+" = ?", key).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, b.notFound
		}
		return nil, err
	}
	return &item, nil
}

// Create сохраняет новую запись
func (b *Base[T]) Create(ctx context.Context, item *T) error {
	return translateError(b.db.WithContext(ctx).Create(item).Error)
}

// Update применяет частичное обновление: меняются только колонки,
// присутствующие в patch
func (b *Base[T]) Update(ctx context.Context, key any, patch map[string]any) (*T, error) {
	item, err := b.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if len(patch) > 0 {
		err := b.db.WithContext(ctx).
			Model(item).
			Where(b.pkColumn+" = ?", key).
			Updates(patch).Error
		if err != nil {
			return nil, translateError(err)
		}
	}

	return b.GetByKey(ctx, key)
}

// Delete удаляет запись; каскадные правила срабатывают на стороне БД
func (b *Base[T]) Delete(ctx context.Context, key any) error {
	var model T
	result := b.db.WithContext(ctx).Where(b.pkColumn+" = ?", key).Delete(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return b.notFound
	}
	return nil
}

// translateError приводит ошибки целостности к бизнес-ошибкам.
// Требует gorm.Config{TranslateError: true}
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrForeignKeyViolation
	default:
		return err
	}
}
