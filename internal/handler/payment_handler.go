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

// PaymentHandler обрабатывает запросы к /payments.
// Платежи адресуются составным ключом (customerNumber, checkNumber)
type PaymentHandler struct {
	svc       *service.PaymentService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewPaymentHandler создаёт новый обработчик
func NewPaymentHandler(svc *service.PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		svc:       svc,
		validator: validator.New(),
		logger:    logger,
	}
}

func (h *PaymentHandler) compositeKey(r *http.Request) (int, string, bool) {
	customerNumber, err := pathInt(r, "customerNumber")
	if err != nil {
		return 0, "", false
	}
	checkNumber := r.PathValue("checkNumber")
	if checkNumber == "" {
		return 0, "", false
	}
	return customerNumber, checkNumber, true
}

// Get обрабатывает GET /payments/{customerNumber}/{checkNumber}
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerNumber, checkNumber, ok := h.compositeKey(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "invalid composite key", "")
		return
	}

	payment, err := h.svc.Get(r.Context(), customerNumber, checkNumber)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, payment)
}

// ByCustomer обрабатывает GET /payments/customer/{customerNumber}
func (h *PaymentHandler) ByCustomer(w http.ResponseWriter, r *http.Request) {
	customerNumber, err := pathInt(r, "customerNumber")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	payments, err := h.svc.ByCustomer(r.Context(), customerNumber)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if payments == nil {
		payments = []domain.Payment{}
	}

	respondJSON(w, h.logger, http.StatusOK, payments)
}

// Create обрабатывает POST /payments
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	payment, err := req.ToModel()
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	if err := h.svc.Create(r.Context(), payment); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, payment)
}

// Update обрабатывает PUT /payments/{customerNumber}/{checkNumber}
func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	customerNumber, checkNumber, ok := h.compositeKey(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "invalid composite key", "")
		return
	}

	var req dto.UpdatePaymentRequest
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

	payment, err := h.svc.Update(r.Context(), customerNumber, checkNumber, patch)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, payment)
}

// Delete обрабатывает DELETE /payments/{customerNumber}/{checkNumber}
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	customerNumber, checkNumber, ok := h.compositeKey(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "invalid composite key", "")
		return
	}

	if err := h.svc.Delete(r.Context(), customerNumber, checkNumber); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
