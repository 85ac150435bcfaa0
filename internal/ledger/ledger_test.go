package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/internal/domain"
)

type memDonationRepo struct {
	mu        sync.Mutex
	seq       int
	donations map[string]*domain.Donation
	filtered  []domain.DonationFilter
}

func newMemDonationRepo() *memDonationRepo {
	return &memDonationRepo{donations: map[string]*domain.Donation{}}
}

func (m *memDonationRepo) Create(_ context.Context, d *domain.Donation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	d.ID = fmt.Sprintf("donation-%d", m.seq)
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	clone := *d
	m.donations[d.ID] = &clone
	return nil
}

func (m *memDonationRepo) GetByID(_ context.Context, id string) (*domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.donations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *d
	return &clone, nil
}

func (m *memDonationRepo) GetDetail(ctx context.Context, id string) (*domain.DonationDetail, error) {
	d, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.DonationDetail{Donation: *d, DonorName: "Donor", DonorEmail: "donor@example.com"}, nil
}

// MarkVerified mirrors the conditional UPDATE: the transition happens only
// when the row is still Pending, under a single lock.
func (m *memDonationRepo) MarkVerified(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.donations[id]
	if !ok || d.Status != domain.DonationStatusPending {
		return false, nil
	}
	d.Status = domain.DonationStatusVerified
	return true, nil
}

func (m *memDonationRepo) ListByDonor(_ context.Context, donorID string) ([]domain.DonationDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.DonationDetail{}
	for _, d := range m.donations {
		if d.UserID == donorID {
			out = append(out, domain.DonationDetail{Donation: *d})
		}
	}
	return out, nil
}

func (m *memDonationRepo) ListFiltered(_ context.Context, filter domain.DonationFilter) ([]domain.DonationDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filtered = append(m.filtered, filter)
	out := []domain.DonationDetail{}
	for _, d := range m.donations {
		if filter.DonorIDs != nil {
			found := false
			for _, id := range filter.DonorIDs {
				if d.UserID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, domain.DonationDetail{Donation: *d})
	}
	return out, nil
}

type memUserRepo struct {
	users map[string]*domain.User
}

func (m *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUserRepo) SearchIDs(_ context.Context, keyword string) ([]string, error) {
	ids := []string{}
	for id, u := range m.users {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(keyword)) ||
			strings.Contains(strings.ToLower(u.Email), strings.ToLower(keyword)) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// fakeGate stands in for the campaign lifecycle. Collected amounts accumulate
// under a lock the way the store-side increment would.
type fakeGate struct {
	mu          sync.Mutex
	validateErr error
	validated   []string
	collected   map[string]int64
}

func newFakeGate() *fakeGate {
	return &fakeGate{collected: map[string]int64{}}
}

func (g *fakeGate) ValidateDonatable(_ context.Context, campaignID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.validated = append(g.validated, campaignID)
	return g.validateErr
}

func (g *fakeGate) ApplyFundingDelta(_ context.Context, campaignID string, amount int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.collected[campaignID]; !ok {
		return domain.ErrNotFound
	}
	g.collected[campaignID] += amount
	return nil
}

func newTestLedger(donations *memDonationRepo, users *memUserRepo, gate *fakeGate) *Ledger {
	if users == nil {
		users = &memUserRepo{users: map[string]*domain.User{}}
	}
	return New(donations, users, gate, zerolog.Nop())
}

func pendingInput(campaignID *string, amount int64) CreateInput {
	return CreateInput{
		DonorID:       "donor-1",
		CampaignID:    campaignID,
		AmountInt:     amount,
		DonationType:  domain.DonationTypeZakat,
		Category:      domain.DonationCategoryFood,
		PaymentMethod: domain.PaymentMethodBank,
	}
}

func TestCreateRejectsNonPositiveAmount(t *testing.T) {
	donations := newMemDonationRepo()
	l := newTestLedger(donations, nil, newFakeGate())

	for _, amount := range []int64{0, -50} {
		_, err := l.Create(context.Background(), pendingInput(nil, amount))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
	assert.Empty(t, donations.donations, "no record may be written on validation failure")
}

func TestCreateRejectsUnknownEnums(t *testing.T) {
	donations := newMemDonationRepo()
	l := newTestLedger(donations, nil, newFakeGate())

	in := pendingInput(nil, 100)
	in.DonationType = "Tithe"
	_, err := l.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = pendingInput(nil, 100)
	in.PaymentMethod = "Barter"
	_, err = l.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, donations.donations)
}

func TestCreatePropagatesCampaignValidation(t *testing.T) {
	campaignID := "campaign-1"
	for _, want := range []error{
		domain.ErrCampaignNotFound,
		domain.ErrCampaignInactive,
		domain.ErrCampaignExpired,
	} {
		donations := newMemDonationRepo()
		gate := newFakeGate()
		gate.validateErr = want
		l := newTestLedger(donations, nil, gate)

		_, err := l.Create(context.Background(), pendingInput(&campaignID, 100))
		assert.ErrorIs(t, err, want)
		assert.Empty(t, donations.donations)
	}
}

func TestCreateGeneralFundSkipsCampaignValidation(t *testing.T) {
	gate := newFakeGate()
	gate.validateErr = domain.ErrCampaignNotFound
	l := newTestLedger(newMemDonationRepo(), nil, gate)

	d, err := l.Create(context.Background(), pendingInput(nil, 100))
	require.NoError(t, err)
	assert.Nil(t, d.CampaignID)
	assert.Equal(t, domain.DonationStatusPending, d.Status)
	assert.Empty(t, gate.validated)
}

func TestVerifyNotFound(t *testing.T) {
	l := newTestLedger(newMemDonationRepo(), nil, newFakeGate())
	_, err := l.Verify(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerifyAppliesDeltaExactlyOnce(t *testing.T) {
	ctx := context.Background()
	donations := newMemDonationRepo()
	gate := newFakeGate()
	gate.collected["campaign-g"] = 0
	l := newTestLedger(donations, nil, gate)

	campaignID := "campaign-g"
	first, err := l.Create(ctx, pendingInput(&campaignID, 300))
	require.NoError(t, err)
	second, err := l.Create(ctx, pendingInput(&campaignID, 200))
	require.NoError(t, err)

	verified, err := l.Verify(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusVerified, verified.Status)
	assert.Equal(t, int64(300), gate.collected[campaignID])

	// A second verify attempt is rejected, not silently accepted, and the
	// aggregate does not move.
	_, err = l.Verify(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyVerified)
	assert.Equal(t, int64(300), gate.collected[campaignID])

	got, err := donations.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusPending, got.Status)
}

func TestVerifyGeneralFundSkipsDelta(t *testing.T) {
	ctx := context.Background()
	gate := newFakeGate()
	l := newTestLedger(newMemDonationRepo(), nil, gate)

	d, err := l.Create(ctx, pendingInput(nil, 120))
	require.NoError(t, err)
	_, err = l.Verify(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, gate.collected)
}

func TestVerifyConcurrentSingleWinner(t *testing.T) {
	ctx := context.Background()
	donations := newMemDonationRepo()
	gate := newFakeGate()
	gate.collected["campaign-1"] = 0
	l := newTestLedger(donations, nil, gate)

	campaignID := "campaign-1"
	d, err := l.Create(ctx, pendingInput(&campaignID, 500))
	require.NoError(t, err)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, verr := l.Verify(ctx, d.ID)
			errs <- verr
		}()
	}
	wg.Wait()
	close(errs)

	var wins, rejections int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domain.ErrAlreadyVerified):
			rejections++
		default:
			t.Fatalf("unexpected verify error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, rejections)
	assert.Equal(t, int64(500), gate.collected[campaignID], "funding delta must apply exactly once")
}

func TestListAllSearchWithoutMatchesReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	donations := newMemDonationRepo()
	users := &memUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", Name: "Ayesha", Email: "ayesha@example.com"},
	}}
	l := newTestLedger(donations, users, newFakeGate())

	_, err := l.Create(ctx, pendingInput(nil, 100))
	require.NoError(t, err)

	out, err := l.ListAll(ctx, domain.DonationFilter{}, "no-such-donor")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, donations.filtered, "store must not be queried for an unmatched search")
}

func TestListAllSearchRestrictsToMatchedDonors(t *testing.T) {
	ctx := context.Background()
	donations := newMemDonationRepo()
	users := &memUserRepo{users: map[string]*domain.User{
		"donor-1": {ID: "donor-1", Name: "Ayesha", Email: "ayesha@example.com"},
		"donor-2": {ID: "donor-2", Name: "Bilal", Email: "bilal@example.com"},
	}}
	l := newTestLedger(donations, users, newFakeGate())

	_, err := l.Create(ctx, pendingInput(nil, 100))
	require.NoError(t, err)
	other := pendingInput(nil, 70)
	other.DonorID = "donor-2"
	_, err = l.Create(ctx, other)
	require.NoError(t, err)

	out, err := l.ListAll(ctx, domain.DonationFilter{}, "ayesha")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "donor-1", out[0].UserID)
}
