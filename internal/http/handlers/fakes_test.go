package handlers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"charity/internal/campaign"
	"charity/internal/domain"
	"charity/internal/ledger"
	"charity/internal/receipt"
	"charity/internal/report"
)

// In-memory repositories backing handler tests. They honor the same
// conditional-update semantics the SQL layer provides.

type stubUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*domain.User{}}
}

func (s *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	s.seq++
	u.ID = fmt.Sprintf("user-%d", s.seq)
	u.CreatedAt = time.Now()
	clone := *u
	s.users[u.ID] = &clone
	return u, nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubUserRepo) SearchIDs(context.Context, string) ([]string, error) {
	return []string{}, nil
}

type stubCampaignRepo struct {
	mu         sync.Mutex
	seq        int
	campaigns  map[string]*domain.Campaign
	reconciled int
}

func newStubCampaignRepo() *stubCampaignRepo {
	return &stubCampaignRepo{campaigns: map[string]*domain.Campaign{}}
}

func (s *stubCampaignRepo) Create(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	c.ID = fmt.Sprintf("campaign-%d", s.seq)
	c.CreatedAt = time.Now()
	clone := *c
	s.campaigns[c.ID] = &clone
	return nil
}

func (s *stubCampaignRepo) GetByID(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *stubCampaignRepo) List(context.Context) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		out = append(out, *c)
	}
	return out, nil
}

func (s *stubCampaignRepo) Update(_ context.Context, id string, upd domain.CampaignUpdate) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.GoalAmount != nil {
		c.GoalAmount = *upd.GoalAmount
	}
	// Same one-way status rule the UPDATE statement enforces.
	if upd.Status != nil && c.Status != domain.CampaignStatusCompleted {
		c.Status = *upd.Status
	}
	clone := *c
	return &clone, nil
}

func (s *stubCampaignRepo) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.campaigns, id)
	return nil
}

func (s *stubCampaignRepo) SweepExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var swept int64
	for _, c := range s.campaigns {
		if c.Status == domain.CampaignStatusActive && c.Deadline.Before(now) {
			c.Status = domain.CampaignStatusCompleted
			swept++
		}
	}
	return swept, nil
}

func (s *stubCampaignRepo) IncrementCollected(_ context.Context, id string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.CollectedAmount += amount
	return nil
}

func (s *stubCampaignRepo) ReconcileCollected(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reconciled++
	return nil
}

type stubDonationRepo struct {
	mu        sync.Mutex
	seq       int
	donations map[string]*domain.Donation
}

func newStubDonationRepo() *stubDonationRepo {
	return &stubDonationRepo{donations: map[string]*domain.Donation{}}
}

func (s *stubDonationRepo) Create(_ context.Context, d *domain.Donation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	d.ID = fmt.Sprintf("donation-%d", s.seq)
	d.CreatedAt = time.Now()
	clone := *d
	s.donations[d.ID] = &clone
	return nil
}

func (s *stubDonationRepo) GetByID(_ context.Context, id string) (*domain.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.donations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *d
	return &clone, nil
}

func (s *stubDonationRepo) GetDetail(ctx context.Context, id string) (*domain.DonationDetail, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.DonationDetail{Donation: *d, DonorName: "Test Donor", DonorEmail: "donor@example.com"}, nil
}

func (s *stubDonationRepo) MarkVerified(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.donations[id]
	if !ok || d.Status != domain.DonationStatusPending {
		return false, nil
	}
	d.Status = domain.DonationStatusVerified
	return true, nil
}

func (s *stubDonationRepo) ListByDonor(_ context.Context, donorID string) ([]domain.DonationDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.DonationDetail{}
	for _, d := range s.donations {
		if d.UserID == donorID {
			out = append(out, domain.DonationDetail{Donation: *d})
		}
	}
	return out, nil
}

func (s *stubDonationRepo) ListFiltered(context.Context, domain.DonationFilter) ([]domain.DonationDetail, error) {
	return []domain.DonationDetail{}, nil
}

type stubReportRepo struct {
	stats *domain.PlatformStats
}

func (s *stubReportRepo) PlatformStats(context.Context) (*domain.PlatformStats, error) {
	return s.stats, nil
}

func (s *stubReportRepo) UserSummaries(context.Context, string) ([]domain.UserDonationSummary, error) {
	return []domain.UserDonationSummary{}, nil
}

type testEnv struct {
	app       *App
	users     *stubUserRepo
	campaigns *stubCampaignRepo
	donations *stubDonationRepo
	reports   *stubReportRepo
}

func newTestApp() *testEnv {
	users := newStubUserRepo()
	campaigns := newStubCampaignRepo()
	donations := newStubDonationRepo()
	reports := &stubReportRepo{stats: &domain.PlatformStats{}}
	lifecycle := campaign.NewLifecycle(campaigns, zerolog.Nop())
	app := &App{
		Logger:    zerolog.Nop(),
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		Users:     users,
		Ledger:    ledger.New(donations, users, lifecycle, zerolog.Nop()),
		Campaigns: lifecycle,
		Reports:   report.NewEngine(reports, lifecycle),
		Receipts:  receipt.NewRenderer(""),
	}
	return &testEnv{app: app, users: users, campaigns: campaigns, donations: donations, reports: reports}
}
