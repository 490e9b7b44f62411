package model

import "time"

// Account represents a registered user of the campaign tracker
type Account struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Hash      string    `json:"-"` // Never expose password hash
	IsPremium bool      `json:"is_premium"`
	CreatedOn time.Time `json:"created_on"`
}

// AccountAPI is the client-facing projection of an account
type AccountAPI struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	IsPremium bool   `json:"isPremium"`
}

// ToAPI converts an account to its API projection
func (a *Account) ToAPI() AccountAPI {
	return AccountAPI{
		ID:        a.ID,
		Username:  a.Username,
		IsPremium: a.IsPremium,
	}
}

// Actor is the authenticated identity performing an operation.
// It is resolved by the auth middleware from the access token and a fresh
// account read, and passed explicitly into every access-layer call.
type Actor struct {
	AccountID string
	IsPremium bool
}

// Account constraints
const (
	MaxUsernameLength = 60
	MaxPasswordLength = 128
)
