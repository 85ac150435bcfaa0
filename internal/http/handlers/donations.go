package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"charity/internal/domain"
	"charity/internal/ledger"
)

type donationRequest struct {
	CampaignID    *string `json:"campaign_id"`
	Amount        int64   `json:"amount"`
	DonationType  string  `json:"donation_type"`
	Category      string  `json:"category"`
	PaymentMethod string  `json:"payment_method"`
}

type donationDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	CampaignID    *string   `json:"campaign_id"`
	Amount        int64     `json:"amount"`
	DonationType  string    `json:"donation_type"`
	Category      string    `json:"category"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type donationDetailDTO struct {
	donationDTO
	DonorName     string  `json:"donor_name"`
	DonorEmail    string  `json:"donor_email"`
	CampaignTitle *string `json:"campaign_title"`
}

func toDonationDTO(d domain.Donation) donationDTO {
	return donationDTO{
		ID:            d.ID,
		UserID:        d.UserID,
		CampaignID:    d.CampaignID,
		Amount:        d.AmountInt,
		DonationType:  string(d.DonationType),
		Category:      string(d.Category),
		PaymentMethod: string(d.PaymentMethod),
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}

func toDonationDetailDTO(d domain.DonationDetail) donationDetailDTO {
	return donationDetailDTO{
		donationDTO:   toDonationDTO(d.Donation),
		DonorName:     d.DonorName,
		DonorEmail:    d.DonorEmail,
		CampaignTitle: d.CampaignTitle,
	}
}

func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	d, err := a.Ledger.Create(r.Context(), ledger.CreateInput{
		DonorID:       a.currentUserID(r),
		CampaignID:    req.CampaignID,
		AmountInt:     req.Amount,
		DonationType:  domain.DonationType(req.DonationType),
		Category:      domain.DonationCategory(req.Category),
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toDonationDTO(*d))
}

func (a *App) DonationsMine(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Ledger.ListMine(r.Context(), a.currentUserID(r))
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]donationDetailDTO, 0, len(donations))
	for _, d := range donations {
		items = append(items, toDonationDetailDTO(d))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// DonationsAll serves the admin listing with the filter options recognized in
// the query string: type, status, start_date, end_date, search.
func (a *App) DonationsAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filter domain.DonationFilter
	if v := q.Get("type"); v != "" {
		t := domain.DonationType(v)
		filter.DonationType = &t
	}
	if v := q.Get("status"); v != "" {
		s := domain.DonationStatus(v)
		filter.Status = &s
	}
	if v := q.Get("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "start_date must be RFC 3339")
			return
		}
		filter.DateFrom = &t
	}
	if v := q.Get("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "end_date must be RFC 3339")
			return
		}
		filter.DateTo = &t
	}

	donations, err := a.Ledger.ListAll(r.Context(), filter, q.Get("search"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]donationDetailDTO, 0, len(donations))
	for _, d := range donations {
		items = append(items, toDonationDetailDTO(d))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) DonationsVerify(w http.ResponseWriter, r *http.Request) {
	d, err := a.Ledger.Verify(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toDonationDTO(*d))
}
