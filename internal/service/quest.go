package service

import (
	"context"
	"strings"

	"github.com/forgo/chronicle/api/internal/model"
)

// QuestRepository defines the interface for quest storage
type QuestRepository interface {
	Create(ctx context.Context, quest *model.Quest) error
	ListByCampaign(ctx context.Context, campaignID, ownerID string) ([]*model.Quest, error)
	DeleteOwned(ctx context.Context, id, ownerID string) (bool, error)
	DeleteByCampaign(ctx context.Context, campaignID, ownerID string) error
}

// QuestService implements ownership-scoped quest operations
type QuestService struct {
	campaigns CampaignRepository
	quests    QuestRepository
}

// NewQuestService creates a new quest service
func NewQuestService(campaigns CampaignRepository, quests QuestRepository) *QuestService {
	return &QuestService{
		campaigns: campaigns,
		quests:    quests,
	}
}

// CreateQuestRequest represents a request to create a quest
type CreateQuestRequest struct {
	CampaignID string `json:"campaignId"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Reward     string `json:"reward"`
	Notes      string `json:"notes"`
}

// CreateQuest validates the request, verifies the target campaign belongs
// to the actor and persists the quest with the owner denormalized from the
// actor. A campaign owned by someone else is reported exactly like a
// missing one.
func (s *QuestService) CreateQuest(ctx context.Context, actor model.Actor, req CreateQuestRequest) (*model.Quest, error) {
	title := strings.TrimSpace(req.Title)
	if req.CampaignID == "" || title == "" {
		return nil, ErrQuestFieldsRequired
	}
	if len(title) > model.MaxQuestTitleLength {
		return nil, ErrQuestTitleTooLong
	}

	status := model.QuestStatus(req.Status)
	if req.Status == "" {
		status = model.QuestStatusPlanned
	} else if !model.ValidQuestStatus(status) {
		return nil, ErrQuestStatusInvalid
	}

	if len(req.Reward) > model.MaxQuestRewardLength {
		return nil, ErrQuestRewardTooLong
	}
	if len(req.Notes) > model.MaxQuestNotesLength {
		return nil, ErrQuestNotesTooLong
	}

	// Ownership check is mandatory before the insert; this closes the
	// cross-tenant write path.
	campaign, err := s.campaigns.GetOwned(ctx, req.CampaignID, actor.AccountID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	quest := &model.Quest{
		Title:      title,
		Status:     status,
		Reward:     req.Reward,
		Notes:      req.Notes,
		CampaignID: campaign.ID,
		OwnerID:    actor.AccountID,
	}
	if err := s.quests.Create(ctx, quest); err != nil {
		return nil, err
	}
	return quest, nil
}

// ListQuests returns the quests of an owned campaign, newest first
func (s *QuestService) ListQuests(ctx context.Context, actor model.Actor, campaignID string) ([]*model.Quest, error) {
	campaign, err := s.campaigns.GetOwned(ctx, campaignID, actor.AccountID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return s.quests.ListByCampaign(ctx, campaignID, actor.AccountID)
}

// DeleteQuest removes a quest scoped to the actor. Quests that do not
// exist and quests owned by another account both report ErrQuestNotFound.
func (s *QuestService) DeleteQuest(ctx context.Context, actor model.Actor, questID string) error {
	found, err := s.quests.DeleteOwned(ctx, questID, actor.AccountID)
	if err != nil {
		return err
	}
	if !found {
		return ErrQuestNotFound
	}
	return nil
}
