package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidInput     = errors.New("invalid input")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrCampaignInactive = errors.New("cannot donate to an inactive campaign")
	ErrCampaignExpired  = errors.New("campaign has ended")
	ErrAlreadyVerified  = errors.New("donation already verified")
	ErrNotVerified      = errors.New("donation not verified")
)
