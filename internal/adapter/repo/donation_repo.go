package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"charity/internal/domain"
	"charity/internal/infra"
	"charity/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// Create inserts a new Pending donation and fills in the generated fields.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonation,
		donation.UserID,
		donation.CampaignID,
		donation.AmountInt,
		string(donation.DonationType),
		string(donation.Category),
		string(donation.PaymentMethod))
	return row.Scan(&donation.ID, &donation.Status, &donation.CreatedAt, &donation.UpdatedAt)
}

// GetByID fetches a donation by UUID.
func (r *DonationRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	var d domain.Donation
	row := r.sql.QueryRow(ctx, sqlinline.QSelectDonationByID, id)
	if err := row.Scan(&d.ID, &d.UserID, &d.CampaignID, &d.AmountInt, &d.DonationType, &d.Category, &d.PaymentMethod, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// GetDetail fetches a donation annotated with donor and campaign fields.
func (r *DonationRepositoryPG) GetDetail(ctx context.Context, id string) (*domain.DonationDetail, error) {
	var d domain.DonationDetail
	row := r.sql.QueryRow(ctx, sqlinline.QSelectDonationDetail, id)
	if err := scanDonationDetail(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// MarkVerified transitions Pending to Verified. The WHERE clause carries the
// status guard so only one of two racing callers sees a row change.
func (r *DonationRepositoryPG) MarkVerified(ctx context.Context, id string) (bool, error) {
	tag, err := r.sql.Exec(ctx, sqlinline.QMarkDonationVerified, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListByDonor returns a donor's donations in store order.
func (r *DonationRepositoryPG) ListByDonor(ctx context.Context, donorID string) ([]domain.DonationDetail, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationsByDonor, donorID)
	if err != nil {
		return nil, err
	}
	return collectDonationDetails(rows)
}

// ListFiltered returns donations matching the filter, newest created first.
func (r *DonationRepositoryPG) ListFiltered(ctx context.Context, filter domain.DonationFilter) ([]domain.DonationDetail, error) {
	var donationType, status *string
	if filter.DonationType != nil {
		s := string(*filter.DonationType)
		donationType = &s
	}
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationsFiltered,
		donationType, status, filter.DateFrom, filter.DateTo, filter.DonorIDs)
	if err != nil {
		return nil, err
	}
	return collectDonationDetails(rows)
}

func collectDonationDetails(rows pgx.Rows) ([]domain.DonationDetail, error) {
	defer rows.Close()

	items := []domain.DonationDetail{}
	for rows.Next() {
		var d domain.DonationDetail
		if err := scanDonationDetail(rows, &d); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanDonationDetail(row pgx.Row, d *domain.DonationDetail) error {
	return row.Scan(
		&d.ID, &d.UserID, &d.CampaignID, &d.AmountInt, &d.DonationType, &d.Category,
		&d.PaymentMethod, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		&d.DonorName, &d.DonorEmail, &d.CampaignTitle)
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
