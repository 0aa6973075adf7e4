package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/classicmodels-api/internal/auth"
	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/dto"
	"github.com/classicmodels-api/internal/middleware"
)

// AuthHandler обрабатывает выпуск токенов и /auth/me
type AuthHandler struct {
	svc       *auth.Service
	validator *validator.Validate
	logger    *slog.Logger
}

// NewAuthHandler создаёт новый обработчик
func NewAuthHandler(svc *auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:       svc,
		validator: validator.New(),
		logger:    logger,
	}
}

// Token обрабатывает POST /auth/token
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	user, err := h.svc.Authenticate(req.Username, req.Password)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	token, err := h.svc.IssueToken(user.Username)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me обрабатывает GET /auth/me; имя пользователя кладёт в контекст
// middleware.RequireAuth
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, ok := r.Context().Value(middleware.UsernameKey).(string)
	if !ok || username == "" {
		handleServiceError(w, h.logger, domain.ErrInvalidToken)
		return
	}

	user, err := h.svc.UserByName(username)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, user)
}
