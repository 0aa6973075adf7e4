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

// EmployeeHandler обрабатывает запросы к /employees
type EmployeeHandler struct {
	crudRoutes[domain.Employee]
	svc       *service.EmployeeService
	validator *validator.Validate
}

// NewEmployeeHandler создаёт новый обработчик
func NewEmployeeHandler(svc *service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		crudRoutes: crudRoutes[domain.Employee]{
			crud:   &svc.Crud,
			key:    intKey("employeeNumber"),
			logger: logger,
		},
		svc:       svc,
		validator: validator.New(),
	}
}

// Create обрабатывает POST /employees
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	employee := req.ToModel()
	if err := h.svc.Create(r.Context(), employee); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, employee)
}

// Update обрабатывает PUT /employees/{employeeNumber}
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	key, err := h.key(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid key", err.Error())
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	employee, err := h.svc.Update(r.Context(), key, req.Patch())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, employee)
}

// ByOffice обрабатывает GET /employees/office/{officeCode}
func (h *EmployeeHandler) ByOffice(w http.ResponseWriter, r *http.Request) {
	officeCode := r.PathValue("officeCode")

	employees, err := h.svc.ByOffice(r.Context(), officeCode)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}
	if employees == nil {
		employees = []domain.Employee{}
	}

	respondJSON(w, h.logger, http.StatusOK, employees)
}
