package repository

import (
	"context"
	"errors"

	"github.com/forgo/chronicle/api/internal/database"
	"github.com/forgo/chronicle/api/internal/model"
)

// CampaignRepository handles campaign data access. Every read and mutation
// that takes an owner id includes it directly in the query predicate, so
// records owned by somebody else behave exactly like records that do not
// exist.
type CampaignRepository struct {
	db database.Database
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db database.Database) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create persists a campaign and fills in the store-assigned id and
// creation timestamp.
func (r *CampaignRepository) Create(ctx context.Context, campaign *model.Campaign) error {
	query := `
		CREATE campaign CONTENT {
			name: $name,
			description: $description,
			owner: type::record($owner),
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"name":        campaign.Name,
		"description": campaign.Description,
		"owner":       campaign.OwnerID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	rows := resultRows(result)
	if len(rows) == 0 {
		return errors.New("no result returned")
	}

	var created model.Campaign
	if err := decodeRow(rows[0], &created); err != nil {
		return err
	}
	campaign.ID = created.ID
	campaign.CreatedOn = created.CreatedOn
	return nil
}

// CountByOwner returns the number of live campaigns owned by an account
func (r *CampaignRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT count() FROM campaign WHERE owner = type::record($owner) GROUP ALL`
	vars := map[string]interface{}{"owner": ownerID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return rowCount(result), nil
}

// ListByOwner returns all campaigns owned by an account, newest first
func (r *CampaignRepository) ListByOwner(ctx context.Context, ownerID string) ([]*model.Campaign, error) {
	query := `SELECT * FROM campaign WHERE owner = type::record($owner) ORDER BY created_on DESC`
	vars := map[string]interface{}{"owner": ownerID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := resultRows(result)
	campaigns := make([]*model.Campaign, 0, len(rows))
	for _, row := range rows {
		var c model.Campaign
		if err := decodeRow(row, &c); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, &c)
	}
	return campaigns, nil
}

// GetOwned retrieves a campaign scoped to its owner, nil when no owned
// campaign matches.
func (r *CampaignRepository) GetOwned(ctx context.Context, id, ownerID string) (*model.Campaign, error) {
	query := `SELECT * FROM campaign WHERE id = type::record($id) AND owner = type::record($owner) LIMIT 1`
	vars := map[string]interface{}{
		"id":    id,
		"owner": ownerID,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var campaign model.Campaign
	if err := decodeRow(result, &campaign); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

// DeleteOwned deletes a campaign scoped to its owner. The second return
// value reports whether a record was actually removed.
func (r *CampaignRepository) DeleteOwned(ctx context.Context, id, ownerID string) (bool, error) {
	query := `DELETE campaign WHERE id = type::record($id) AND owner = type::record($owner) RETURN BEFORE`
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
