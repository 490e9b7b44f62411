package model

import "time"

// Campaign represents a tabletop campaign owned by a single account
type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	CreatedOn   time.Time `json:"created_on"`
}

// CampaignAPI is the client-facing projection of a campaign.
// The owner is deliberately omitted; ownership is implied by the
// authenticated request and never leaked to the client.
type CampaignAPI struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToAPI converts a campaign to its API projection
func (c *Campaign) ToAPI() CampaignAPI {
	return CampaignAPI{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// CampaignsToAPI converts a list of campaigns, newest first as stored
func CampaignsToAPI(campaigns []*Campaign) []CampaignAPI {
	out := make([]CampaignAPI, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, c.ToAPI())
	}
	return out
}

// Campaign constraints
const (
	MaxCampaignNameLength = 100
	MaxCampaignDescLength = 1000

	// FreeCampaignLimit is the number of live campaigns a non-premium
	// account may own.
	FreeCampaignLimit = 2
)
