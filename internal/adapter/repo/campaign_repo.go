package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"charity/internal/domain"
	"charity/internal/infra"
	"charity/internal/sqlinline"
)

// CampaignRepositoryPG implements domain.CampaignRepository backed by PostgreSQL.
type CampaignRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCampaignRepository creates a new campaign repo.
func NewCampaignRepository(sql infra.SQLExecutor) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{sql: sql}
}

// Create inserts a new Active campaign with a zero collected amount.
func (r *CampaignRepositoryPG) Create(ctx context.Context, campaign *domain.Campaign) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertCampaign,
		campaign.Title, campaign.Description, campaign.GoalAmount, campaign.Deadline)
	return row.Scan(&campaign.ID, &campaign.CollectedAmount, &campaign.Status, &campaign.CreatedAt, &campaign.UpdatedAt)
}

// GetByID fetches a campaign by UUID.
func (r *CampaignRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	return scanCampaign(r.sql.QueryRow(ctx, sqlinline.QSelectCampaignByID, id))
}

// List returns every campaign, newest first.
func (r *CampaignRepositoryPG) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCampaigns)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Campaign
	for rows.Next() {
		var c domain.Campaign
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.GoalAmount, &c.CollectedAmount, &c.Deadline, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies the non-nil fields. collected_amount is untouchable here.
func (r *CampaignRepositoryPG) Update(ctx context.Context, id string, upd domain.CampaignUpdate) (*domain.Campaign, error) {
	var status *string
	if upd.Status != nil {
		s := string(*upd.Status)
		status = &s
	}
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateCampaign,
		id, upd.Title, upd.Description, upd.GoalAmount, upd.Deadline, status)
	return scanCampaign(row)
}

// Delete removes a campaign. Returns ErrNotFound when the id does not resolve.
func (r *CampaignRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteCampaign, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SweepExpired completes every Active campaign whose deadline has passed.
func (r *CampaignRepositoryPG) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.sql.Exec(ctx, sqlinline.QSweepExpiredCampaigns, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// IncrementCollected applies a funding delta as a store-side atomic increment.
func (r *CampaignRepositoryPG) IncrementCollected(ctx context.Context, id string, amount int64) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QIncrementCollected, id, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReconcileCollected rewrites every aggregate from the verified donation sums.
func (r *CampaignRepositoryPG) ReconcileCollected(ctx context.Context) error {
	_, err := r.sql.Exec(ctx, sqlinline.QReconcileCollected)
	return err
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.GoalAmount, &c.CollectedAmount, &c.Deadline, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

var _ domain.CampaignRepository = (*CampaignRepositoryPG)(nil)
