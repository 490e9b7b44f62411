package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/chronicle/api/internal/middleware"
	"github.com/forgo/chronicle/api/internal/model"
	"github.com/forgo/chronicle/api/internal/service"
)

// LocationHandler handles location HTTP requests
type LocationHandler struct {
	svc *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc *service.LocationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

// Create handles POST /api/locations
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req service.CreateLocationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	location, err := h.svc.CreateLocation(ctx, actor, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"location": location.ToAPI(),
	})
}

// List handles GET /api/locations?campaignId=
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	campaignID := r.URL.Query().Get("campaignId")
	if campaignID == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "campaignId", Message: "campaign id is required"},
		}))
		return
	}

	locations, err := h.svc.ListLocations(ctx, actor, campaignID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"locations": model.LocationsToAPI(locations),
	})
}

// Delete handles POST /api/locations/delete
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req struct {
		LocationID string `json:"locationId"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.LocationID == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "locationId", Message: "location id is required"},
		}))
		return
	}

	if err := h.svc.DeleteLocation(ctx, actor, req.LocationID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Location deleted."})
}

func (h *LocationHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrLocationFieldsRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "name", Message: "campaign and location name are required"},
		}))
	case errors.Is(err, service.ErrLocationNameTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "name", Message: "location name exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrLocationTypeTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "type", Message: "location type exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrLocationDescTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "description", Message: "location description exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrLocationNotesTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "notes", Message: "location notes exceed maximum length"},
		}))
	case errors.Is(err, service.ErrCampaignNotFound):
		WriteError(w, model.NewNotFoundError("campaign"))
	case errors.Is(err, service.ErrLocationNotFound):
		WriteError(w, model.NewNotFoundError("location"))
	default:
		slog.Error("location operation failed", slog.Any("error", err))
		WriteError(w, model.NewInternalError(""))
	}
}
