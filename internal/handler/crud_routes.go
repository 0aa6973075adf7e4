package handler

import (
	"log/slog"
	"net/http"

	"github.com/classicmodels-api/internal/service"
)

// crudRoutes реализует общие обработчики list/paginated/get/delete
// для сущностей с одноколоночным ключом
type crudRoutes[T any] struct {
	crud   *service.Crud[T]
	key    func(*http.Request) (any, error)
	logger *slog.Logger
}

// List обрабатывает GET /{entities}?skip=&limit=
func (h *crudRoutes[T]) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parseListQuery(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	items, err := h.crud.List(r.Context(), skip, limit)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if items == nil {
		items = []T{}
	}

	respondJSON(w, h.logger, http.StatusOK, items)
}

// Paginated обрабатывает GET /{entities}/paginated?page=&size=
func (h *crudRoutes[T]) Paginated(w http.ResponseWriter, r *http.Request) {
	page, size, err := parsePageQuery(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	result, err := h.crud.Paginated(r.Context(), page, size)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// Get обрабатывает GET /{entities}/{key}
func (h *crudRoutes[T]) Get(w http.ResponseWriter, r *http.Request) {
	key, err := h.key(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	item, err := h.crud.Get(r.Context(), key)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// Delete обрабатывает DELETE /{entities}/{key}
func (h *crudRoutes[T]) Delete(w http.ResponseWriter, r *http.Request) {
	key, err := h.key(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	if err := h.crud.Delete(r.Context(), key); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
