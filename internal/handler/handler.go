package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/dto"
)

// respondJSON сериализует данные в тело ответа
func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// respondError отправляет стандартный ответ с ошибкой
func respondError(w http.ResponseWriter, logger *slog.Logger, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// handleServiceError переводит бизнес-ошибки в HTTP статусы
func handleServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrOfficeNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrOrderDetailNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrProductLineNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		respondError(w, logger, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrDuplicateKey):
		respondError(w, logger, http.StatusConflict, err.Error(), "")
	case errors.Is(err, domain.ErrForeignKeyViolation):
		respondError(w, logger, http.StatusUnprocessableEntity, err.Error(), "")
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUserNotFound):
		w.Header().Set("WWW-Authenticate", "Bearer")
		respondError(w, logger, http.StatusUnauthorized, err.Error(), "")
	default:
		logger.Error("internal error", slog.Any("error", err))
		respondError(w, logger, http.StatusInternalServerError, "internal server error", "")
	}
}

// parseListQuery разбирает параметры skip/limit
func parseListQuery(r *http.Request) (skip, limit int, err error) {
	skip, limit = 0, 100

	if s := r.URL.Query().Get("skip"); s != "" {
		skip, err = strconv.Atoi(s)
		if err != nil || skip < 0 {
			return 0, 0, errors.New("skip must be a non-negative integer")
		}
	}

	if s := r.URL.Query().Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 1 {
			return 0, 0, errors.New("limit must be a positive integer")
		}
	}

	return skip, limit, nil
}

// parsePageQuery разбирает параметры page/size
func parsePageQuery(r *http.Request) (page, size int, err error) {
	page, size = 1, 10

	if s := r.URL.Query().Get("page"); s != "" {
		page, err = strconv.Atoi(s)
		if err != nil || page < 1 {
			return 0, 0, errors.New("page must be a positive integer")
		}
	}

	if s := r.URL.Query().Get("size"); s != "" {
		size, err = strconv.Atoi(s)
		if err != nil || size < 1 {
			return 0, 0, errors.New("size must be a positive integer")
		}
	}

	return page, size, nil
}

// pathInt извлекает целочисленный параметр пути
func pathInt(r *http.Request, param string) (int, error) {
	value, err := strconv.Atoi(r.PathValue(param))
	if err != nil {
		return 0, errors.New("invalid " + param)
	}
	return value, nil
}

// intKey возвращает извлекатель целочисленного первичного ключа из пути
func intKey(param string) func(*http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		return pathInt(r, param)
	}
}

// stringKey возвращает извлекатель строкового первичного ключа из пути
func stringKey(param string) func(*http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		value := r.PathValue(param)
		if value == "" {
			return nil, errors.New(param + " is required")
		}
		return value, nil
	}
}
