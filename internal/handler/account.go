package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/chronicle/api/internal/middleware"
	"github.com/forgo/chronicle/api/internal/model"
	"github.com/forgo/chronicle/api/internal/service"
)

// AccountHandler handles account HTTP requests
type AccountHandler struct {
	svc *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// Get handles GET /account/data
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	account, err := h.svc.GetAccount(ctx, actor)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"account": map[string]interface{}{
			"username":  account.Username,
			"isPremium": account.IsPremium,
		},
	})
}

// TogglePremium handles POST /account/togglePremium
func (h *AccountHandler) TogglePremium(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	premium, err := h.svc.TogglePremium(ctx, actor)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"isPremium": premium,
	})
}

// ChangePassword handles POST /account/changePassword
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req service.ChangePasswordRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.svc.ChangePassword(ctx, actor, req); err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully."})
}

func (h *AccountHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		WriteError(w, model.NewNotFoundError("account"))
	case errors.Is(err, service.ErrAllFieldsRequired):
		WriteError(w, model.NewBadRequestError("All fields are required."))
	case errors.Is(err, service.ErrPasswordMismatch):
		WriteError(w, model.NewBadRequestError("New passwords do not match."))
	case errors.Is(err, service.ErrPasswordTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "newPass", Message: "password exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, model.NewUnauthorizedError("Old password is incorrect."))
	default:
		slog.Error("account operation failed", slog.Any("error", err))
		WriteError(w, model.NewInternalError(""))
	}
}
