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

// OfficeHandler обрабатывает запросы к /offices
type OfficeHandler struct {
	crudRoutes[domain.Office]
	svc       *service.OfficeService
	validator *validator.Validate
}

// NewOfficeHandler создаёт новый обработчик
func NewOfficeHandler(svc *service.OfficeService, logger *slog.Logger) *OfficeHandler {
	return &OfficeHandler{
		crudRoutes: crudRoutes[domain.Office]{
			crud:   &svc.Crud,
			key:    stringKey("officeCode"),
			logger: logger,
		},
		svc:       svc,
		validator: validator.New(),
	}
}

// Create обрабатывает POST /offices
func (h *OfficeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	office := req.ToModel()
	if err := h.svc.Create(r.Context(), office); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, office)
}

// Update обрабатывает PUT /offices/{officeCode}
func (h *OfficeHandler) Update(w http.ResponseWriter, r *http.Request) {
	key, err := h.key(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	var req dto.UpdateOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	office, err := h.svc.Update(r.Context(), key, req.Patch())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, office)
}
