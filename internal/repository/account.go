package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/chronicle/api/internal/database"
	"github.com/forgo/chronicle/api/internal/model"
)

// AccountRepository handles account data access
type AccountRepository struct {
	db database.Database
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db database.Database) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account. The username is unique; violations are
// reported as database.ErrDuplicate.
func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	query := `
		CREATE account CONTENT {
			username: $username,
			hash: $hash,
			is_premium: false,
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"username": account.Username,
		"hash":     account.Hash,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: username already in use", database.ErrDuplicate)
		}
		return err
	}

	rows := resultRows(result)
	if len(rows) == 0 {
		return errors.New("no result returned")
	}

	created, err := parseAccountRow(rows[0])
	if err != nil {
		return err
	}
	account.ID = created.ID
	account.IsPremium = created.IsPremium
	account.CreatedOn = created.CreatedOn
	return nil
}

// GetByID retrieves an account by ID, nil when missing
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*model.Account, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	account, err := parseAccountRow(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

// GetByUsername retrieves an account by username, nil when missing
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	query := `SELECT * FROM account WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	account, err := parseAccountRow(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

// UpdatePassword replaces the stored password hash
func (r *AccountRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	query := `UPDATE type::record($id) SET hash = $hash`
	vars := map[string]interface{}{
		"id":   id,
		"hash": hash,
	}
	return r.db.Execute(ctx, query, vars)
}

// SetPremium persists the premium flag
func (r *AccountRepository) SetPremium(ctx context.Context, id string, premium bool) error {
	query := `UPDATE type::record($id) SET is_premium = $premium`
	vars := map[string]interface{}{
		"id":      id,
		"premium": premium,
	}
	return r.db.Execute(ctx, query, vars)
}

func parseAccountRow(row interface{}) (*model.Account, error) {
	// The hash field is extracted by hand since Account.Hash carries json:"-"
	var hash string
	if data, ok := row.(map[string]interface{}); ok {
		if h, ok := data["hash"].(string); ok {
			hash = h
		}
	}

	var account model.Account
	if err := decodeRow(row, &account); err != nil {
		return nil, err
	}
	account.Hash = hash
	return &account, nil
}
