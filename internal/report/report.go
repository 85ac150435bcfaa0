// Package report computes derived statistics over users, campaigns, and
// donations. Nothing in here mutates ledger state beyond the read-triggered
// expiry sweep.
package report

import (
	"context"
	"fmt"

	"charity/internal/domain"
)

// Sweeper triggers the lazy campaign expiry pass before reads that depend on
// current status.
type Sweeper interface {
	SweepExpired(ctx context.Context) error
}

// Engine serves platform statistics and per-user donation summaries.
type Engine struct {
	reports domain.ReportRepository
	sweeper Sweeper
}

// NewEngine wires a reporting engine.
func NewEngine(reports domain.ReportRepository, sweeper Sweeper) *Engine {
	return &Engine{reports: reports, sweeper: sweeper}
}

// PlatformStats sweeps expired campaigns, then returns the dashboard figures
// so the active-campaign count reflects the current time.
func (e *Engine) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	if err := e.sweeper.SweepExpired(ctx); err != nil {
		return nil, err
	}
	stats, err := e.reports.PlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("platform stats: %w", err)
	}
	return stats, nil
}

// UserDonationSummaries returns one row per user whose name or email matches
// the keyword (empty keyword matches all), newest registered first. The
// aggregation runs as a single grouped join, never one query per user.
func (e *Engine) UserDonationSummaries(ctx context.Context, keyword string) ([]domain.UserDonationSummary, error) {
	summaries, err := e.reports.UserSummaries(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("user donation summaries: %w", err)
	}
	return summaries, nil
}
