package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/chronicle/api/internal/middleware"
	"github.com/forgo/chronicle/api/internal/model"
	"github.com/forgo/chronicle/api/internal/service"
)

// QuestHandler handles quest HTTP requests
type QuestHandler struct {
	svc *service.QuestService
}

// NewQuestHandler creates a new quest handler
func NewQuestHandler(svc *service.QuestService) *QuestHandler {
	return &QuestHandler{svc: svc}
}

// Create handles POST /api/quests
func (h *QuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req service.CreateQuestRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	quest, err := h.svc.CreateQuest(ctx, actor, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"quest": quest.ToAPI(),
	})
}

// List handles GET /api/quests?campaignId=
func (h *QuestHandler) List(w http.ResponseWriter, r *http.Request) {
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

	quests, err := h.svc.ListQuests(ctx, actor, campaignID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"quests": model.QuestsToAPI(quests),
	})
}

// Delete handles POST /api/quests/delete
func (h *QuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req struct {
		QuestID string `json:"questId"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.QuestID == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "questId", Message: "quest id is required"},
		}))
		return
	}

	if err := h.svc.DeleteQuest(ctx, actor, req.QuestID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Quest deleted."})
}

func (h *QuestHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrQuestFieldsRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "title", Message: "campaign and title are required"},
		}))
	case errors.Is(err, service.ErrQuestTitleTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "title", Message: "quest title exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrQuestStatusInvalid):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "status", Message: "quest status must be planned, active, or completed"},
		}))
	case errors.Is(err, service.ErrQuestRewardTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "reward", Message: "quest reward exceeds maximum length"},
		}))
	case errors.Is(err, service.ErrQuestNotesTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "notes", Message: "quest notes exceed maximum length"},
		}))
	case errors.Is(err, service.ErrCampaignNotFound):
		WriteError(w, model.NewNotFoundError("campaign"))
	case errors.Is(err, service.ErrQuestNotFound):
		WriteError(w, model.NewNotFoundError("quest"))
	default:
		slog.Error("quest operation failed", slog.Any("error", err))
		WriteError(w, model.NewInternalError(""))
	}
}
