package repository

import (
	"context"
	"errors"

	"github.com/forgo/chronicle/api/internal/database"
	"github.com/forgo/chronicle/api/internal/model"
)

// LocationRepository handles location data access
type LocationRepository struct {
	db database.Database
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db database.Database) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create persists a location with the denormalized campaign owner
func (r *LocationRepository) Create(ctx context.Context, location *model.Location) error {
	query := `
		CREATE location CONTENT {
			name: $name,
			type: $type,
			description: $description,
			notes: $notes,
			campaign: type::record($campaign),
			owner: type::record($owner),
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"name":        location.Name,
		"type":        location.Type,
		"description": location.Description,
		"notes":       location.Notes,
		"campaign":    location.CampaignID,
		"owner":       location.OwnerID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	rows := resultRows(result)
	if len(rows) == 0 {
		return errors.New("no result returned")
	}

	var created model.Location
	if err := decodeRow(rows[0], &created); err != nil {
		return err
	}
	location.ID = created.ID
	location.CreatedOn = created.CreatedOn
	return nil
}

// ListByCampaign returns a campaign's locations scoped to the owner,
// newest first.
func (r *LocationRepository) ListByCampaign(ctx context.Context, campaignID, ownerID string) ([]*model.Location, error) {
	query := `
		SELECT * FROM location
		WHERE campaign = type::record($campaign) AND owner = type::record($owner)
		ORDER BY created_on DESC
	`
	vars := map[string]interface{}{
		"campaign": campaignID,
		"owner":    ownerID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := resultRows(result)
	locations := make([]*model.Location, 0, len(rows))
	for _, row := range rows {
		var l model.Location
		if err := decodeRow(row, &l); err != nil {
			return nil, err
		}
		locations = append(locations, &l)
	}
	return locations, nil
}

// DeleteOwned deletes a location scoped to its owner. The second return
// value reports whether a record was actually removed.
func (r *LocationRepository) DeleteOwned(ctx context.Context, id, ownerID string) (bool, error) {
	query := `DELETE location WHERE id = type::record($id) AND owner = type::record($owner) RETURN BEFORE`
	vars := map[string]interface{}{
		"id":    id,
		"owner": ownerID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return false, err
	}
	return len(resultRows(result)) > 0, nil
}

// DeleteByCampaign removes all locations of an owned campaign as part of
// the cascade delete.
func (r *LocationRepository) DeleteByCampaign(ctx context.Context, campaignID, ownerID string) error {
	query := `DELETE location WHERE campaign = type::record($campaign) AND owner = type::record($owner)`
	vars := map[string]interface{}{
		"campaign": campaignID,
		"owner":    ownerID,
	}
	return r.db.Execute(ctx, query, vars)
}
