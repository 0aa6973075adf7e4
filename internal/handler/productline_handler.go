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

// ProductLineHandler обрабатывает запросы к /productlines
type ProductLineHandler struct {
	crudRoutes[domain.ProductLine]
	svc       *service.ProductLineService
	validator *validator.Validate
}

// NewProductLineHandler создаёт новый обработчик
func NewProductLineHandler(svc *service.ProductLineService, logger *slog.Logger) *ProductLineHandler {
	return &ProductLineHandler{
		crudRoutes: crudRoutes[domain.ProductLine]{
			crud:   &svc.Crud,
			key:    stringKey("productLine"),
			logger: logger,
		},
		svc:       svc,
		validator: validator.New(),
	}
}

// Create обрабатывает POST /productlines
func (h *ProductLineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	productLine := req.ToModel()
	if err := h.svc.Create(r.Context(), productLine); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, productLine)
}

// Update обрабатывает PUT /productlines/{productLine}
func (h *ProductLineHandler) Update(w http.ResponseWriter, r *http.Request) {
	key, err := h.key(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	var req dto.UpdateProductLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	productLine, err := h.svc.Update(r.Context(), key, req.Patch())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, productLine)
}
