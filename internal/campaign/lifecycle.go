// Package campaign owns the campaign state machine: Active campaigns complete
// either by explicit admin action or by a lazy deadline sweep, and the
// collected-amount aggregate moves only through funding deltas and
// reconciliation.
package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"charity/internal/domain"
)

// Lifecycle manages campaign state transitions and the funding aggregate.
type Lifecycle struct {
	campaigns domain.CampaignRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewLifecycle wires a lifecycle manager over the campaign repository.
func NewLifecycle(campaigns domain.CampaignRepository, logger zerolog.Logger) *Lifecycle {
	return &Lifecycle{campaigns: campaigns, logger: logger, now: time.Now}
}

// Create persists a new Active campaign.
func (l *Lifecycle) Create(ctx context.Context, title, description string, goalAmount int64, deadline time.Time) (*domain.Campaign, error) {
	if goalAmount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if title == "" || description == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &domain.Campaign{
		Title:       title,
		Description: description,
		GoalAmount:  goalAmount,
		Deadline:    deadline,
		Status:      domain.CampaignStatusActive,
	}
	if err := l.campaigns.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

// Get returns a single campaign.
func (l *Lifecycle) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return l.campaigns.GetByID(ctx, id)
}

// List sweeps expired campaigns first so returned statuses reflect the
// current time, then returns every campaign. The sweep here is the only
// mechanism completing campaigns on deadline; there is no background timer.
func (l *Lifecycle) List(ctx context.Context) ([]domain.Campaign, error) {
	if err := l.SweepExpired(ctx); err != nil {
		return nil, err
	}
	return l.campaigns.List(ctx)
}

// Update applies admin edits. The collected amount cannot be edited through
// here, and a Completed campaign never reverts to Active. The status check
// below gives the caller a clean error; the store enforces the one-way
// transition independently, so a sweep landing between the read and the
// write cannot be undone.
func (l *Lifecycle) Update(ctx context.Context, id string, upd domain.CampaignUpdate) (*domain.Campaign, error) {
	if upd.GoalAmount != nil && *upd.GoalAmount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if upd.Status != nil {
		if *upd.Status != domain.CampaignStatusActive && *upd.Status != domain.CampaignStatusCompleted {
			return nil, domain.ErrInvalidInput
		}
		if *upd.Status == domain.CampaignStatusActive {
			current, err := l.campaigns.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if current.Status == domain.CampaignStatusCompleted {
				return nil, domain.ErrInvalidInput
			}
		}
	}
	return l.campaigns.Update(ctx, id, upd)
}

// Delete removes a campaign.
func (l *Lifecycle) Delete(ctx context.Context, id string) error {
	return l.campaigns.Delete(ctx, id)
}

// SweepExpired completes every Active campaign whose deadline has passed.
// Idempotent: an already-Completed campaign never matches the predicate.
func (l *Lifecycle) SweepExpired(ctx context.Context) error {
	swept, err := l.campaigns.SweepExpired(ctx, l.now())
	if err != nil {
		return fmt.Errorf("sweep expired campaigns: %w", err)
	}
	if swept > 0 {
		l.logger.Info().Int64("campaigns", swept).Msg("expired campaigns completed")
	}
	return nil
}

// ApplyFundingDelta folds a verified donation amount into the campaign
// aggregate via a store-side atomic increment. It deliberately does not check
// campaign status: a donation verified after its campaign completed still
// counts toward the total.
func (l *Lifecycle) ApplyFundingDelta(ctx context.Context, campaignID string, amount int64) error {
	if err := l.campaigns.IncrementCollected(ctx, campaignID, amount); err != nil {
		return fmt.Errorf("apply funding delta to campaign %s: %w", campaignID, err)
	}
	return nil
}

// ValidateDonatable checks that a campaign can accept a new donation. The
// deadline is checked against the clock independently of the stored status,
// closing the window where an expired campaign has not been swept yet.
func (l *Lifecycle) ValidateDonatable(ctx context.Context, campaignID string) error {
	c, err := l.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrCampaignNotFound
		}
		return err
	}
	if c.Status != domain.CampaignStatusActive {
		return domain.ErrCampaignInactive
	}
	if c.Expired(l.now()) {
		return domain.ErrCampaignExpired
	}
	return nil
}

// Reconcile rewrites every campaign's collected amount as the sum of its
// verified donations. Safe to run at any time, any number of times; this is
// the recovery path for a crash between donation verification and the
// funding delta.
func (l *Lifecycle) Reconcile(ctx context.Context) error {
	if err := l.campaigns.ReconcileCollected(ctx); err != nil {
		return fmt.Errorf("reconcile collected amounts: %w", err)
	}
	l.logger.Info().Msg("campaign aggregates reconciled")
	return nil
}
