package model

import "time"

// Location represents a notable place inside a campaign. Like Quest, it
// carries a denormalized copy of the campaign owner for single-query
// ownership checks.
type Location struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Notes       string    `json:"notes"`
	CampaignID  string    `json:"campaign_id"`
	OwnerID     string    `json:"owner_id"`
	CreatedOn   time.Time `json:"created_on"`
}

// LocationAPI is the client-facing projection of a location
type LocationAPI struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	Campaign    string `json:"campaign"`
}

// ToAPI converts a location to its API projection
func (l *Location) ToAPI() LocationAPI {
	return LocationAPI{
		ID:          l.ID,
		Name:        l.Name,
		Type:        l.Type,
		Description: l.Description,
		Notes:       l.Notes,
		Campaign:    l.CampaignID,
	}
}

// LocationsToAPI converts a list of locations
func LocationsToAPI(locations []*Location) []LocationAPI {
	out := make([]LocationAPI, 0, len(locations))
	for _, l := range locations {
		out = append(out, l.ToAPI())
	}
	return out
}

// Location constraints
const (
	MaxLocationNameLength  = 150
	MaxLocationTypeLength  = 100
	MaxLocationDescLength  = 2000
	MaxLocationNotesLength = 2000
)
