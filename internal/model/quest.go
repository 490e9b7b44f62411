package model

import "time"

// QuestStatus represents the lifecycle stage of a quest
type QuestStatus string

const (
	QuestStatusPlanned   QuestStatus = "planned"
	QuestStatusActive    QuestStatus = "active"
	QuestStatusCompleted QuestStatus = "completed"
)

// ValidQuestStatus reports whether s is one of the enumerated statuses
func ValidQuestStatus(s QuestStatus) bool {
	switch s {
	case QuestStatusPlanned, QuestStatusActive, QuestStatusCompleted:
		return true
	}
	return false
}

// Quest represents a quest inside a campaign. OwnerID is a denormalized
// copy of the parent campaign's owner, written at creation time so every
// ownership check needs only a single predicate.
type Quest struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Status     QuestStatus `json:"status"`
	Reward     string      `json:"reward"`
	Notes      string      `json:"notes"`
	CampaignID string      `json:"campaign_id"`
	OwnerID    string      `json:"owner_id"`
	CreatedOn  time.Time   `json:"created_on"`
}

// QuestAPI is the client-facing projection of a quest
type QuestAPI struct {
	ID       string      `json:"_id"`
	Title    string      `json:"title"`
	Status   QuestStatus `json:"status"`
	Reward   string      `json:"reward"`
	Notes    string      `json:"notes"`
	Campaign string      `json:"campaign"`
}

// ToAPI converts a quest to its API projection
func (q *Quest) ToAPI() QuestAPI {
	return QuestAPI{
		ID:       q.ID,
		Title:    q.Title,
		Status:   q.Status,
		Reward:   q.Reward,
		Notes:    q.Notes,
		Campaign: q.CampaignID,
	}
}

// QuestsToAPI converts a list of quests
func QuestsToAPI(quests []*Quest) []QuestAPI {
	out := make([]QuestAPI, 0, len(quests))
	for _, q := range quests {
		out = append(out, q.ToAPI())
	}
	return out
}

// Quest constraints
const (
	MaxQuestTitleLength  = 150
	MaxQuestRewardLength = 500
	MaxQuestNotesLength  = 2000
)
