package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/chronicle/api/internal/model"
	"github.com/forgo/chronicle/api/internal/service"
)

// AuthHandler handles signup, login and logout
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// AuthResponse is the success envelope for signup and login
type AuthResponse struct {
	Token    string `json:"token"`
	Redirect string `json:"redirect"`
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	_, token, err := h.svc.Signup(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	setTokenCookie(w, r, token)
	WriteJSON(w, http.StatusOK, AuthResponse{Token: token, Redirect: "/app"})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	_, token, err := h.svc.Login(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	setTokenCookie(w, r, token)
	WriteJSON(w, http.StatusOK, AuthResponse{Token: token, Redirect: "/app"})
}

// Logout handles GET /logout. Tokens are stateless, so logout just clears
// the browser cookie and sends the client home.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func setTokenCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAllFieldsRequired):
		WriteError(w, model.NewBadRequestError("All fields are required."))
	case errors.Is(err, service.ErrPasswordMismatch):
		WriteError(w, model.NewBadRequestError("Passwords do not match."))
	case errors.Is(err, service.ErrUsernameTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "username", Message: "username exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrPasswordTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "pass", Message: "password exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrUsernameTaken):
		WriteError(w, model.NewBadRequestError("Username is already in use."))
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, model.NewUnauthorizedError("Wrong username or password."))
	default:
		slog.Error("auth operation failed", slog.Any("error", err))
		WriteError(w, model.NewInternalError(""))
	}
}
