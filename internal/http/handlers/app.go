package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"charity/internal/campaign"
	"charity/internal/domain"
	"charity/internal/ledger"
	"charity/internal/middleware"
	"charity/internal/receipt"
	"charity/internal/report"
)

// App is the handler container: services in, HTTP out.
type App struct {
	Logger    zerolog.Logger
	JWTSecret string
	TokenTTL  time.Duration
	Users     domain.UserRepository
	Ledger    *ledger.Ledger
	Campaigns *campaign.Lifecycle
	Reports   *report.Engine
	Receipts  *receipt.Renderer
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]string{"error": kind, "message": message})
}

// domainError maps the error taxonomy onto HTTP statuses.
func (a *App) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrCampaignNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrCampaignInactive) ||
		errors.Is(err, domain.ErrCampaignExpired) ||
		errors.Is(err, domain.ErrNotVerified):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrAlreadyVerified) || errors.Is(err, domain.ErrDuplicateEmail):
		a.error(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		a.Logger.Error().Err(err).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}
