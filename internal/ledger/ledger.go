// Package ledger enforces the donation state machine. Donations enter
// Pending, transition to Verified exactly once, and a verified campaign
// donation folds its amount into the campaign aggregate.
package ledger

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"charity/internal/domain"
)

// CampaignGate is the slice of the campaign lifecycle the ledger consumes.
type CampaignGate interface {
	ValidateDonatable(ctx context.Context, campaignID string) error
	ApplyFundingDelta(ctx context.Context, campaignID string, amount int64) error
}

// Ledger orchestrates donation creation, verification, and listings.
type Ledger struct {
	donations domain.DonationRepository
	users     domain.UserRepository
	campaigns CampaignGate
	logger    zerolog.Logger
}

// New wires a donation ledger.
func New(donations domain.DonationRepository, users domain.UserRepository, campaigns CampaignGate, logger zerolog.Logger) *Ledger {
	return &Ledger{donations: donations, users: users, campaigns: campaigns, logger: logger}
}

// CreateInput carries the fields of a new donation. CampaignID nil means the
// general fund.
type CreateInput struct {
	DonorID       string
	CampaignID    *string
	AmountInt     int64
	DonationType  domain.DonationType
	Category      domain.DonationCategory
	PaymentMethod domain.PaymentMethod
}

// Create validates the input and the target campaign, then persists a
// Pending donation. No record is written when validation fails.
func (l *Ledger) Create(ctx context.Context, in CreateInput) (*domain.Donation, error) {
	if in.AmountInt <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.ValidDonationType(in.DonationType) ||
		!domain.ValidDonationCategory(in.Category) ||
		!domain.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if in.CampaignID != nil {
		if err := l.campaigns.ValidateDonatable(ctx, *in.CampaignID); err != nil {
			return nil, err
		}
	}

	d := &domain.Donation{
		UserID:        in.DonorID,
		CampaignID:    in.CampaignID,
		AmountInt:     in.AmountInt,
		DonationType:  in.DonationType,
		Category:      in.Category,
		PaymentMethod: in.PaymentMethod,
		Status:        domain.DonationStatusPending,
	}
	if err := l.donations.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}
	return d, nil
}

// Verify transitions a donation to Verified exactly once and applies the
// funding delta when the donation targets a campaign. The transition and the
// delta are two separate atomic writes, not one transaction; a fault between
// them is repaired by campaign reconciliation, never by the caller.
func (l *Ledger) Verify(ctx context.Context, donationID string) (*domain.Donation, error) {
	d, err := l.donations.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if d.Status == domain.DonationStatusVerified {
		return nil, domain.ErrAlreadyVerified
	}

	// Conditional transition: under a verify race only one caller flips the
	// row, so the delta below is applied at most once.
	won, err := l.donations.MarkVerified(ctx, donationID)
	if err != nil {
		return nil, fmt.Errorf("verify donation %s: %w", donationID, err)
	}
	if !won {
		return nil, domain.ErrAlreadyVerified
	}
	d.Status = domain.DonationStatusVerified
	l.logger.Info().Str("donation", donationID).Msg("donation verified")

	if d.CampaignID != nil {
		if err := l.campaigns.ApplyFundingDelta(ctx, *d.CampaignID, d.AmountInt); err != nil {
			// The Verified transition already stuck; surfacing an error here
			// would invite a retry that double-counts. Reconciliation repairs
			// the aggregate.
			l.logger.Error().Err(err).
				Str("donation", donationID).
				Str("campaign", *d.CampaignID).
				Msg("funding delta failed; aggregate pending reconciliation")
		}
	}
	return d, nil
}

// ListMine returns the donor's donations annotated with campaign titles. No
// ordering is guaranteed.
func (l *Ledger) ListMine(ctx context.Context, donorID string) ([]domain.DonationDetail, error) {
	return l.donations.ListByDonor(ctx, donorID)
}

// ListAll returns donations matching the filters, newest created first, each
// annotated with donor name/email and campaign title. A search text that
// matches no donor yields an empty listing, not an error.
func (l *Ledger) ListAll(ctx context.Context, filter domain.DonationFilter, searchText string) ([]domain.DonationDetail, error) {
	if searchText != "" {
		ids, err := l.users.SearchIDs(ctx, searchText)
		if err != nil {
			return nil, fmt.Errorf("resolve donor search: %w", err)
		}
		if len(ids) == 0 {
			return []domain.DonationDetail{}, nil
		}
		filter.DonorIDs = ids
	}
	return l.donations.ListFiltered(ctx, filter)
}

// Get returns a single donation with donor and campaign annotation.
func (l *Ledger) Get(ctx context.Context, donationID string) (*domain.DonationDetail, error) {
	return l.donations.GetDetail(ctx, donationID)
}
