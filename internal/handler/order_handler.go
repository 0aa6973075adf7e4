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

// OrderHandler обрабатывает запросы к /orders
type OrderHandler struct {
	crudRoutes[domain.Order]
	svc       *service.OrderService
	validator *validator.Validate
}

// NewOrderHandler создаёт новый обработчик
func NewOrderHandler(svc *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		crudRoutes: crudRoutes[domain.Order]{
			crud:   &svc.Crud,
			key:    intKey("orderNumber"),
			logger: logger,
		},
		svc:       svc,
		validator: validator.New(),
	}
}

// Create обрабатывает POST /orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	order, err := req.ToModel()
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	if err := h.svc.Create(r.Context(), order); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, order)
}

// Update обрабатывает PUT /orders/{orderNumber}
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	key, err := h.key(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	var req dto.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	patch, err := req.Patch()
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	order, err := h.svc.Update(r.Context(), key, patch)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, order)
}

// Details обрабатывает GET /orders/{orderNumber}/details
func (h *OrderHandler) Details(w http.ResponseWriter, r *http.Request) {
	orderNumber, err := pathInt(r, "orderNumber")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	details, err := h.svc.Details(r.Context(), orderNumber)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if details == nil {
		details = []domain.OrderDetail{}
	}

	respondJSON(w, h.logger, http.StatusOK, details)
}

// ByCustomer обрабатывает GET /orders/customer/{customerNumber}
func (h *OrderHandler) ByCustomer(w http.ResponseWriter, r *http.Request) {
	customerNumber, err := pathInt(r, "customerNumber")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	orders, err := h.svc.ByCustomer(r.Context(), customerNumber)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	respondJSON(w, h.logger, http.StatusOK, orders)
}
