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

// CustomerHandler обрабатывает запросы к /customers
type CustomerHandler struct {
	crudRoutes[domain.Customer]
	svc       *service.CustomerService
	validator *validator.Validate
}

// NewCustomerHandler создаёт новый обработчик
func NewCustomerHandler(svc *service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		crudRoutes: crudRoutes[domain.Customer]{
			crud:   &svc.Crud,
			key:    intKey("customerNumber"),
			logger: logger,
		},
		svc:       svc,
		validator: validator.New(),
	}
}

// Create обрабатывает POST /customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	customer := req.ToModel()
	if err := h.svc.Create(r.Context(), customer); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, customer)
}

// Update обрабатывает PUT /customers/{customerNumber}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	key, err := h.key(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	var req dto.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	customer, err := h.svc.Update(r.Context(), key, req.Patch())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, customer)
}

// Orders обрабатывает GET /customers/{customerNumber}/orders
func (h *CustomerHandler) Orders(w http.ResponseWriter, r *http.Request) {
	customerNumber, err := pathInt(r, "customerNumber")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	orders, err := h.svc.Orders(r.Context(), customerNumber)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	respondJSON(w, h.logger, http.StatusOK, orders)
}
