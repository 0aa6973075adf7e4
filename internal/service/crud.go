package service

import (
	"context"

	"github.com/classicmodels-api/internal/dto"
	"github.com/classicmodels-api/internal/repository"
)

// Crud реализует общую бизнес-логику CRUD поверх обобщённого
// репозитория: сборку конверта пагинации и проброс типизированных
// ошибок "не найдено"
type Crud[T any] struct {
	repo *repository.Base[T]
}

// NewCrud создаёт обобщённый сервис поверх репозитория
func NewCrud[T any](repo *repository.Base[T]) Crud[T] {
	return Crud[T]{repo: repo}
}

// List возвращает до limit записей, пропустив offset
func (s *Crud[T]) List(ctx context.Context, offset, limit int) ([]T, error) {
	return s.repo.ListAll(ctx, offset, limit)
}

// Paginated возвращает страницу записей в конверте
// {items, total, page, size, pages}
func (s *Crud[T]) Paginated(ctx context.Context, page, size int) (*dto.Page[T], error) {
	items, total, pages, err := s.repo.ListPaginated(ctx, page, size)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &dto.Page[T]{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}, nil
}

// Get возвращает запись по ключу
func (s *Crud[T]) Get(ctx context.Context, key any) (*T, error) {
	return s.repo.GetByKey(ctx, key)
}

// Create сохраняет новую запись
func (s *Crud[T]) Create(ctx context.Context, item *T) error {
	return s.repo.Create(ctx, item)
}

// Update применяет частичное обновление и возвращает свежую запись
func (s *Crud[T]) Update(ctx context.Context, key any, patch map[string]any) (*T, error) {
	return s.repo.Update(ctx, key, patch)
}

// Delete удаляет запись по ключу
func (s *Crud[T]) Delete(ctx context.Context, key any) error {
	return s.repo.Delete(ctx, key)
}
