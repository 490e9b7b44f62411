package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgo/chronicle/api/internal/database"
	"github.com/forgo/chronicle/api/internal/model"
)

// bcryptCost matches the work factor used for all stored password hashes
const bcryptCost = 12

// AccountRepository defines the interface for account storage
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	GetByID(ctx context.Context, id string) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	UpdatePassword(ctx context.Context, id, hash string) error
	SetPremium(ctx context.Context, id string, premium bool) error
}

// TokenService issues and validates access tokens
type TokenService interface {
	Generate(accountID, username string) (string, error)
	Validate(token string) (accountID string, username string, err error)
}

// AuthService handles signup, login and actor resolution
type AuthService struct {
	accounts AccountRepository
	tokens   TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(accounts AccountRepository, tokens TokenService) *AuthService {
	return &AuthService{
		accounts: accounts,
		tokens:   tokens,
	}
}

// SignupRequest represents a registration request
type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"pass"`
	ConfirmPassword string `json:"pass2"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"pass"`
}

// Signup registers a new account and returns it with an access token
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.Account, string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, "", ErrAllFieldsRequired
	}
	if req.Password != req.ConfirmPassword {
		return nil, "", ErrPasswordMismatch
	}
	if len(username) > model.MaxUsernameLength {
		return nil, "", ErrUsernameTooLong
	}
	if len(req.Password) > model.MaxPasswordLength {
		return nil, "", ErrPasswordTooLong
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	account := &model.Account{
		Username: username,
		Hash:     hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	token, err := s.tokens.Generate(account.ID, account.Username)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// Login verifies credentials and returns the account with an access token.
// Unknown usernames and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.Account, string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, "", ErrAllFieldsRequired
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if account == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !checkPassword(account.Hash, req.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(account.ID, account.Username)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// ResolveActor validates an access token and loads the account behind it.
// The premium flag is always read fresh so a plan change takes effect on
// the next request rather than at token expiry.
func (s *AuthService) ResolveActor(ctx context.Context, token string) (model.Actor, error) {
	accountID, _, err := s.tokens.Validate(token)
	if err != nil {
		return model.Actor{}, ErrInvalidCredentials
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return model.Actor{}, err
	}
	if account == nil {
		return model.Actor{}, ErrInvalidCredentials
	}
	return model.Actor{
		AccountID: account.ID,
		IsPremium: account.IsPremium,
	}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
