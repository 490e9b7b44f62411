package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgo/chronicle/api/internal/model"
)

// CampaignRepository defines the interface for campaign storage
type CampaignRepository interface {
	Create(ctx context.Context, campaign *model.Campaign) error
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Campaign, error)
	GetOwned(ctx context.Context, id, ownerID string) (*model.Campaign, error)
	DeleteOwned(ctx context.Context, id, ownerID string) (bool, error)
}

// CampaignService implements the ownership-scoped campaign operations,
// including the free-tier quota gate and the cascade delete.
type CampaignService struct {
	campaigns CampaignRepository
	quests    QuestRepository
	locations LocationRepository
}

// NewCampaignService creates a new campaign service
func NewCampaignService(campaigns CampaignRepository, quests QuestRepository, locations LocationRepository) *CampaignService {
	return &CampaignService{
		campaigns: campaigns,
		quests:    quests,
		locations: locations,
	}
}

// CreateCampaignRequest represents a request to create a campaign
type CreateCampaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCampaign validates the request, enforces the free-tier quota and
// persists a campaign owned by the actor.
//
// The quota count is read fresh from the store on every call. Two
// concurrent creates near the boundary can both observe a stale count and
// both succeed, transiently pushing a free account past the limit; this is
// an accepted limitation of the demo premium gate.
func (s *CampaignService) CreateCampaign(ctx context.Context, actor model.Actor, req CreateCampaignRequest) (*model.Campaign, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrCampaignNameRequired
	}
	if len(name) > model.MaxCampaignNameLength {
		return nil, ErrCampaignNameTooLong
	}
	if len(req.Description) > model.MaxCampaignDescLength {
		return nil, ErrCampaignDescTooLong
	}

	if !actor.IsPremium {
		count, err := s.campaigns.CountByOwner(ctx, actor.AccountID)
		if err != nil {
			return nil, err
		}
		if count >= model.FreeCampaignLimit {
			return nil, ErrCampaignQuotaExceeded
		}
	}

	campaign := &model.Campaign{
		Name:        name,
		Description: req.Description,
		OwnerID:     actor.AccountID,
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// ListCampaigns returns the actor's campaigns, newest first. An actor
// without campaigns gets an empty list, never an error.
func (s *CampaignService) ListCampaigns(ctx context.Context, actor model.Actor) ([]*model.Campaign, error) {
	return s.campaigns.ListByOwner(ctx, actor.AccountID)
}

// DeleteCampaign removes an owned campaign and all of its quests and
// locations. Children are deleted before the parent so that a failure
// partway never leaves children referencing a campaign the owner can no
// longer list.
//
// Failure reporting:
//   - the initial quest step failing is a total failure (the campaign is
//     still intact and listed)
//   - any later step failing is ErrPartialDelete, since records are
//     already gone
func (s *CampaignService) DeleteCampaign(ctx context.Context, actor model.Actor, campaignID string) error {
	campaign, err := s.campaigns.GetOwned(ctx, campaignID, actor.AccountID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}

	if err := s.quests.DeleteByCampaign(ctx, campaignID, actor.AccountID); err != nil {
		return fmt.Errorf("deleting quests: %w", err)
	}
	if err := s.locations.DeleteByCampaign(ctx, campaignID, actor.AccountID); err != nil {
		return fmt.Errorf("%w: quests removed, locations failed: %v", ErrPartialDelete, err)
	}

	found, err := s.campaigns.DeleteOwned(ctx, campaignID, actor.AccountID)
	if err != nil {
		return fmt.Errorf("%w: children removed, campaign failed: %v", ErrPartialDelete, err)
	}
	if !found {
		// Campaign vanished between the ownership check and the delete;
		// its children are already gone so this is still a partial result.
		return fmt.Errorf("%w: campaign removed concurrently", ErrPartialDelete)
	}
	return nil
}
