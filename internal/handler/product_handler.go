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

// ProductHandler обрабатывает запросы к /products
type ProductHandler struct {
	crudRoutes[domain.Product]
	svc       *service.ProductService
	validator *validator.Validate
}

// NewProductHandler создаёт новый обработчик
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		crudRoutes: crudRoutes[domain.Product]{
			crud:   &svc.Crud,
			key:    stringKey("productCode"),
			logger: logger,
		},
		svc:       svc,
		validator: validator.New(),
	}
}

// Create обрабатывает POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	product := req.ToModel()
	if err := h.svc.Create(r.Context(), product); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, product)
}

// Update обрабатывает PUT /products/{productCode}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	key, err := h.key(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	product, err := h.svc.Update(r.Context(), key, req.Patch())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, product)
}

// ByProductLine обрабатывает GET /products/productline/{productLine}
func (h *ProductHandler) ByProductLine(w http.ResponseWriter, r *http.Request) {
	productLine := r.PathValue("productLine")

	products, err := h.svc.ByProductLine(r.Context(), productLine)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}

	respondJSON(w, h.logger, http.StatusOK, products)
}
