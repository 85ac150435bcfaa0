package domain

import (
	"context"
	"time"
)

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// SearchIDs returns the ids of users whose name or email contains the
	// keyword, case-insensitively. A keyword matching nobody returns an
	// empty slice, not an error.
	SearchIDs(ctx context.Context, keyword string) ([]string, error)
}

// CampaignRepository defines persistence for campaigns, including the atomic
// aggregate primitives the ledger depends on.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *Campaign) error
	GetByID(ctx context.Context, id string) (*Campaign, error)
	List(ctx context.Context) ([]Campaign, error)
	Update(ctx context.Context, id string, upd CampaignUpdate) (*Campaign, error)
	Delete(ctx context.Context, id string) error
	// SweepExpired transitions every Active campaign whose deadline lies
	// before now to Completed and reports how many rows changed.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
	// IncrementCollected adds amount to the stored aggregate as a single
	// store-side increment. Returns ErrNotFound when id does not resolve.
	IncrementCollected(ctx context.Context, id string, amount int64) error
	// ReconcileCollected rewrites every campaign's collected amount as the
	// sum of its verified donations.
	ReconcileCollected(ctx context.Context) error
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	GetByID(ctx context.Context, id string) (*Donation, error)
	GetDetail(ctx context.Context, id string) (*DonationDetail, error)
	// MarkVerified performs the conditional Pending to Verified transition.
	// It reports false without error when the row exists but is no longer
	// Pending, so racing verifiers cannot both win.
	MarkVerified(ctx context.Context, id string) (bool, error)
	ListByDonor(ctx context.Context, donorID string) ([]DonationDetail, error)
	ListFiltered(ctx context.Context, filter DonationFilter) ([]DonationDetail, error)
}

// ReportRepository executes the read-only aggregations behind the reporting
// engine.
type ReportRepository interface {
	PlatformStats(ctx context.Context) (*PlatformStats, error)
	// UserSummaries runs a single grouped join over users and donations.
	// An empty keyword matches every user.
	UserSummaries(ctx context.Context, keyword string) ([]UserDonationSummary, error)
}
