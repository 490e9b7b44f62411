package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/chronicle/api/internal/middleware"
	"github.com/forgo/chronicle/api/internal/model"
	"github.com/forgo/chronicle/api/internal/service"
)

// CampaignHandler handles campaign HTTP requests
type CampaignHandler struct {
	svc *service.CampaignService
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(svc *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{svc: svc}
}

// Create handles POST /api/campaigns
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req service.CreateCampaignRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	campaign, err := h.svc.CreateCampaign(ctx, actor, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"campaign": campaign.ToAPI(),
	})
}

// List handles GET /api/campaigns
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	campaigns, err := h.svc.ListCampaigns(ctx, actor)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"campaigns": model.CampaignsToAPI(campaigns),
	})
}

// Delete handles POST /api/campaigns/delete
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req struct {
		CampaignID string `json:"campaignId"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.CampaignID == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "campaignId", Message: "campaign id is required"},
		}))
		return
	}

	if err := h.svc.DeleteCampaign(ctx, actor, req.CampaignID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Campaign deleted."})
}

func (h *CampaignHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCampaignNameRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "name", Message: "campaign name is required"},
		}))
	case errors.Is(err, service.ErrCampaignNameTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "name", Message: "campaign name exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrCampaignDescTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "description", Message: "campaign description exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrCampaignQuotaExceeded):
		WriteError(w, model.NewQuotaExceededError("campaigns", model.FreeCampaignLimit))
	case errors.Is(err, service.ErrCampaignNotFound):
		WriteError(w, model.NewNotFoundError("campaign"))
	case errors.Is(err, service.ErrPartialDelete):
		slog.Error("campaign cascade delete incomplete", slog.Any("error", err))
		WriteError(w, model.NewPartialDeleteError(""))
	default:
		slog.Error("campaign operation failed", slog.Any("error", err))
		WriteError(w, model.NewInternalError(""))
	}
}
