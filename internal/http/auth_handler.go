package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/domain"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/service"
)

// SessionManager is the gateway's view of the session store.
type SessionManager interface {
	SessionReader
	Login(ctx context.Context, clientID, email, password string) (service.LoginResult, error)
	Register(ctx context.Context, clientID, email, password, name string) (bool, error)
	Logout(ctx context.Context, clientID string) error
}

type AuthHandler struct {
	sessions SessionManager
	timeout  time.Duration
}

func NewAuthHandler(sessions SessionManager, timeout time.Duration) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		timeout:  timeout,
	}
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequestDTO struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
}

type UserResponseDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func userDTO(user *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	clientID := clientIDFromContext(r.Context())

	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "email and password are required")
		return
	}

	result, err := h.sessions.Login(ctx, clientID, req.Email, req.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "login failed")
		return
	}
	if !result.Success {
		// Wrong credentials are a negative result, not a server fault
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "email ou senha incorretos")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	clientID := clientIDFromContext(r.Context())

	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// The session store does not validate these; the caller does.
	if req.Email == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "email and name are required")
		return
	}
	if len(req.Password) < 6 {
		respondError(w, http.StatusBadRequest, "weak_password", "password must have at least 6 characters")
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		respondError(w, http.StatusBadRequest, "password_mismatch", "passwords do not match")
		return
	}

	ok, err := h.sessions.Register(ctx, clientID, strings.TrimSpace(req.Email), req.Password, req.Name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "registration failed")
		return
	}
	if !ok {
		respondError(w, http.StatusConflict, "email_taken", "este email já está cadastrado")
		return
	}

	user, err := h.sessions.Current(ctx, clientID)
	if err != nil || user == nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "registration failed")
		return
	}

	respondJSON(w, http.StatusCreated, userDTO(user))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	clientID := clientIDFromContext(r.Context())
	if err := h.sessions.Logout(ctx, clientID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "logout failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me returns the restored session, or 401 when the slot is empty.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	clientID := clientIDFromContext(r.Context())
	user, err := h.sessions.Current(ctx, clientID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to resolve session")
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "no active session")
		return
	}

	respondJSON(w, http.StatusOK, userDTO(user))
}
