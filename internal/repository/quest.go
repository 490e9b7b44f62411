package repository

import (
	"context"
	"errors"

	"github.com/forgo/chronicle/api/internal/database"
	"github.com/forgo/chronicle/api/internal/model"
)

// QuestRepository handles quest data access
type QuestRepository struct {
	db database.Database
}

// NewQuestRepository creates a new quest repository
func NewQuestRepository(db database.Database) *QuestRepository {
	return &QuestRepository{db: db}
}

// Create persists a quest. The owner is the denormalized campaign owner
// supplied by the access layer, never a client value.
func (r *QuestRepository) Create(ctx context.Context, quest *model.Quest) error {
	query := `
		CREATE quest CONTENT {
			title: $title,
			status: $status,
			reward: $reward,
			notes: $notes,
			campaign: type::record($campaign),
			owner: type::record($owner),
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"title":    quest.Title,
		"status":   string(quest.Status),
		"reward":   quest.Reward,
		"notes":    quest.Notes,
		"campaign": quest.CampaignID,
		"owner":    quest.OwnerID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	rows := resultRows(result)
	if len(rows) == 0 {
		return errors.New("no result returned")
	}

	var created model.Quest
	if err := decodeRow(rows[0], &created); err != nil {
		return err
	}
	quest.ID = created.ID
	quest.CreatedOn = created.CreatedOn
	return nil
}

// ListByCampaign returns a campaign's quests scoped to the owner, newest
// first.
func (r *QuestRepository) ListByCampaign(ctx context.Context, campaignID, ownerID string) ([]*model.Quest, error) {
	query := `
		SELECT * FROM quest
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
	quests := make([]*model.Quest, 0, len(rows))
	for _, row := range rows {
		var q model.Quest
		if err := decodeRow(row, &q); err != nil {
			return nil, err
		}
		quests = append(quests, &q)
	}
	return quests, nil
}

// DeleteOwned deletes a quest scoped to its owner. The second return value
// reports whether a record was actually removed.
func (r *QuestRepository) DeleteOwned(ctx context.Context, id, ownerID string) (bool, error) {
	query := `DELETE quest WHERE id = type::record($id) AND owner = type::record($owner) RETURN BEFORE`
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

// DeleteByCampaign removes all quests of an owned campaign. Used by the
// cascade delete, before the campaign record itself is removed.
func (r *QuestRepository) DeleteByCampaign(ctx context.Context, campaignID, ownerID string) error {
	query := `DELETE quest WHERE campaign = type::record($campaign) AND owner = type::record($owner)`
	vars := map[string]interface{}{
		"campaign": campaignID,
		"owner":    ownerID,
	}
	return r.db.Execute(ctx, query, vars)
}
