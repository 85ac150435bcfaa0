package repo

import (
	"context"

	"charity/internal/domain"
	"charity/internal/infra"
	"charity/internal/sqlinline"
)

// ReportRepositoryPG implements domain.ReportRepository using PostgreSQL.
type ReportRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewReportRepository creates a new report repo.
func NewReportRepository(sql infra.SQLExecutor) *ReportRepositoryPG {
	return &ReportRepositoryPG{sql: sql}
}

// PlatformStats computes the dashboard figures in a single round trip.
func (r *ReportRepositoryPG) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	var s domain.PlatformStats
	row := r.sql.QueryRow(ctx, sqlinline.QPlatformStats)
	if err := row.Scan(&s.TotalVerifiedAmount, &s.TotalDonors, &s.ActiveCampaigns, &s.PendingDonations); err != nil {
		return nil, err
	}
	return &s, nil
}

// UserSummaries runs the grouped join over users and donations, newest
// registered first.
func (r *ReportRepositoryPG) UserSummaries(ctx context.Context, keyword string) ([]domain.UserDonationSummary, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QUserDonationSummaries, escapeLikePattern(keyword))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.UserDonationSummary{}
	for rows.Next() {
		var s domain.UserDonationSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Role, &s.CreatedAt,
			&s.TotalDonations, &s.TotalAmount, &s.VerifiedAmount); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.ReportRepository = (*ReportRepositoryPG)(nil)
