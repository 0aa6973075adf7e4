package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/dto"
	"github.com/classicmodels-api/internal/service"
)

// OrderDetailHandler обрабатывает запросы к /orderdetails.
// Позиции адресуются составным ключом (orderNumber, productCode)
type OrderDetailHandler struct {
	svc       *service.OrderDetailService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewOrderDetailHandler создаёт новый обработчик
func NewOrderDetailHandler(svc *service.OrderDetailService, logger *slog.Logger) *OrderDetailHandler {
	return &OrderDetailHandler{
		svc:       svc,
		validator: validator.New(),
		logger:    logger,
	}
}

func (h *OrderDetailHandler) compositeKey(r *http.Request) (int, string, bool) {
	orderNumber, err := pathInt(r, "orderNumber")
	if err != nil {
		return 0, "", false
	}
	productCode := r.PathValue("productCode")
	if productCode == "" {
		return 0, "", false
	}
	return orderNumber, productCode, true
}

// Get обрабатывает GET /orderdetails/{orderNumber}/{productCode}
func (h *OrderDetailHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderNumber, productCode, ok := h.compositeKey(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "invalid composite key", "")
		return
	}

	detail, err := h.svc.Get(r.Context(), orderNumber, productCode)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, detail)
}

// ByOrder обрабатывает GET /orderdetails/order/{orderNumber}
func (h *OrderDetailHandler) ByOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber, err := pathInt(r, "orderNumber")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	details, err := h.svc.ByOrder(r.Context(), orderNumber)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if details == nil {
		details = []domain.OrderDetail{}
	}

	respondJSON(w, h.logger, http.StatusOK, details)
}

// Create обрабатывает POST /orderdetails
func (h *OrderDetailHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	detail := req.ToModel()
	if err := h.svc.Create(r.Context(), detail); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, detail)
}

// Update обрабатывает PUT /orderdetails/{orderNumber}/{productCode}
func (h *OrderDetailHandler) Update(w http.ResponseWriter, r *http.Request) {
	orderNumber, productCode, ok := h.compositeKey(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "invalid composite key", "")
		return
	}

	var req dto.UpdateOrderDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	detail, err := h.svc.Update(r.Context(), orderNumber, productCode, req.Patch())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, detail)
}

// Delete обрабатывает DELETE /orderdetails/{orderNumber}/{productCode}
func (h *OrderDetailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderNumber, productCode, ok := h.compositeKey(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "invalid composite key", "")
		return
	}

	if err := h.svc.Delete(r.Context(), orderNumber, productCode); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
