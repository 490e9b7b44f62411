package service

import (
	"context"

	"github.com/forgo/chronicle/api/internal/model"
)

// AccountService handles operations on the authenticated account itself
type AccountService struct {
	accounts AccountRepository
}

// NewAccountService creates a new account service
func NewAccountService(accounts AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"oldPass"`
	NewPassword     string `json:"newPass"`
	ConfirmPassword string `json:"newPass2"`
}

// GetAccount returns the actor's own account
func (s *AccountService) GetAccount(ctx context.Context, actor model.Actor) (*model.Account, error) {
	account, err := s.accounts.GetByID(ctx, actor.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// TogglePremium flips the actor's premium flag and returns the new value
func (s *AccountService) TogglePremium(ctx context.Context, actor model.Actor) (bool, error) {
	account, err := s.accounts.GetByID(ctx, actor.AccountID)
	if err != nil {
		return false, err
	}
	if account == nil {
		return false, ErrAccountNotFound
	}

	premium := !account.IsPremium
	if err := s.accounts.SetPremium(ctx, account.ID, premium); err != nil {
		return false, err
	}
	return premium, nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *AccountService) ChangePassword(ctx context.Context, actor model.Actor, req ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return ErrAllFieldsRequired
	}
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(req.NewPassword) > model.MaxPasswordLength {
		return ErrPasswordTooLong
	}

	account, err := s.accounts.GetByID(ctx, actor.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	if !checkPassword(account.Hash, req.CurrentPassword) {
		return ErrInvalidCredentials
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.accounts.UpdatePassword(ctx, account.ID, hash)
}
