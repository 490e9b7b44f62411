package service

import (
	"context"
	"strings"

	"github.com/forgo/chronicle/api/internal/model"
)

// LocationRepository defines the interface for location storage
type LocationRepository interface {
	Create(ctx context.Context, location *model.Location) error
	ListByCampaign(ctx context.Context, campaignID, ownerID string) ([]*model.Location, error)
	DeleteOwned(ctx context.Context, id, ownerID string) (bool, error)
	DeleteByCampaign(ctx context.Context, campaignID, ownerID string) error
}

// LocationService implements ownership-scoped location operations
type LocationService struct {
	campaigns CampaignRepository
	locations LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(campaigns CampaignRepository, locations LocationRepository) *LocationService {
	return &LocationService{
		campaigns: campaigns,
		locations: locations,
	}
}

// CreateLocationRequest represents a request to create a location
type CreateLocationRequest struct {
	CampaignID  string `json:"campaignId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
}

// CreateLocation validates the request, verifies campaign ownership and
// persists the location with the owner denormalized from the actor.
func (s *LocationService) CreateLocation(ctx context.Context, actor model.Actor, req CreateLocationRequest) (*model.Location, error) {
	name := strings.TrimSpace(req.Name)
	if req.CampaignID == "" || name == "" {
		return nil, ErrLocationFieldsRequired
	}
	if len(name) > model.MaxLocationNameLength {
		return nil, ErrLocationNameTooLong
	}
	if len(req.Type) > model.MaxLocationTypeLength {
		return nil, ErrLocationTypeTooLong
	}
	if len(req.Description) > model.MaxLocationDescLength {
		return nil, ErrLocationDescTooLong
	}
	if len(req.Notes) > model.MaxLocationNotesLength {
		return nil, ErrLocationNotesTooLong
	}

	campaign, err := s.campaigns.GetOwned(ctx, req.CampaignID, actor.AccountID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	location := &model.Location{
		Name:        name,
		Type:        req.Type,
		Description: req.Description,
		Notes:       req.Notes,
		CampaignID:  campaign.ID,
		OwnerID:     actor.AccountID,
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// ListLocations returns the locations of an owned campaign, newest first
func (s *LocationService) ListLocations(ctx context.Context, actor model.Actor, campaignID string) ([]*model.Location, error) {
	campaign, err := s.campaigns.GetOwned(ctx, campaignID, actor.AccountID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return s.locations.ListByCampaign(ctx, campaignID, actor.AccountID)
}

// DeleteLocation removes a location scoped to the actor
func (s *LocationService) DeleteLocation(ctx context.Context, actor model.Actor, locationID string) error {
	found, err := s.locations.DeleteOwned(ctx, locationID, actor.AccountID)
	if err != nil {
		return err
	}
	if !found {
		return ErrLocationNotFound
	}
	return nil
}
