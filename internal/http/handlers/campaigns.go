package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"charity/internal/domain"
)

type campaignRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GoalAmount  int64     `json:"goal_amount"`
	Deadline    time.Time `json:"deadline"`
}

type campaignUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	GoalAmount  *int64     `json:"goal_amount"`
	Deadline    *time.Time `json:"deadline"`
	Status      *string    `json:"status"`
}

type campaignDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	GoalAmount      int64     `json:"goal_amount"`
	CollectedAmount int64     `json:"collected_amount"`
	Deadline        time.Time `json:"deadline"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func toCampaignDTO(c domain.Campaign) campaignDTO {
	return campaignDTO{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		GoalAmount:      c.GoalAmount,
		CollectedAmount: c.CollectedAmount,
		Deadline:        c.Deadline,
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt,
	}
}

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	c, err := a.Campaigns.Create(r.Context(), req.Title, req.Description, req.GoalAmount, req.Deadline)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toCampaignDTO(*c))
}

// CampaignsList sweeps expired campaigns before listing, so the statuses it
// returns reflect the current time.
func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	campaigns, err := a.Campaigns.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]campaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, toCampaignDTO(c))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	c, err := a.Campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toCampaignDTO(*c))
}

func (a *App) CampaignsUpdate(w http.ResponseWriter, r *http.Request) {
	var req campaignUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	upd := domain.CampaignUpdate{
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		Deadline:    req.Deadline,
	}
	if req.Status != nil {
		status := domain.CampaignStatus(*req.Status)
		upd.Status = &status
	}
	c, err := a.Campaigns.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toCampaignDTO(*c))
}

func (a *App) CampaignsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Campaigns.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"message": "campaign removed"})
}
