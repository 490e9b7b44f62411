package service

import "errors"

// Centralized service layer errors. All errors returned by service methods
// are defined here so handler-side mapping stays predictable.

// ===== Authentication / Account Errors =====
var (
	ErrAllFieldsRequired  = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooLong    = errors.New("password exceeds maximum length")
	ErrUsernameTooLong    = errors.New("username exceeds maximum length")
	ErrUsernameTaken      = errors.New("username is already in use")
	ErrInvalidCredentials = errors.New("wrong username or password")
	ErrAccountNotFound    = errors.New("account not found")
)

// ===== Campaign Errors =====
var (
	ErrCampaignNameRequired  = errors.New("campaign name is required")
	ErrCampaignNameTooLong   = errors.New("campaign name exceeds maximum length")
	ErrCampaignDescTooLong   = errors.New("campaign description exceeds maximum length")
	ErrCampaignQuotaExceeded = errors.New("free campaign limit reached")

	// ErrCampaignNotFound covers campaigns that do not exist and campaigns
	// owned by another account; callers must not be able to tell them apart.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrPartialDelete reports a cascade delete that failed after some
	// records were already removed.
	ErrPartialDelete = errors.New("partial delete")
)

// ===== Quest Errors =====
var (
	ErrQuestFieldsRequired = errors.New("campaign and title are required")
	ErrQuestTitleTooLong   = errors.New("quest title exceeds maximum length")
	ErrQuestStatusInvalid  = errors.New("quest status must be planned, active, or completed")
	ErrQuestRewardTooLong  = errors.New("quest reward exceeds maximum length")
	ErrQuestNotesTooLong   = errors.New("quest notes exceed maximum length")
	ErrQuestNotFound       = errors.New("quest not found")
)

// ===== Location Errors =====
var (
	ErrLocationFieldsRequired = errors.New("campaign and location name are required")
	ErrLocationNameTooLong    = errors.New("location name exceeds maximum length")
	ErrLocationTypeTooLong    = errors.New("location type exceeds maximum length")
	ErrLocationDescTooLong    = errors.New("location description exceeds maximum length")
	ErrLocationNotesTooLong   = errors.New("location notes exceed maximum length")
	ErrLocationNotFound       = errors.New("location not found")
)
