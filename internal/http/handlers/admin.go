package handlers

import (
	"net/http"
)

func (a *App) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Reports.PlatformStats(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_donation_amount": stats.TotalVerifiedAmount,
		"total_donors":          stats.TotalDonors,
		"active_campaigns":      stats.ActiveCampaigns,
		"pending_donations":     stats.PendingDonations,
	})
}

// AdminReconcile recomputes every campaign's collected amount from its
// verified donations. Operational recovery only; never part of a read path.
func (a *App) AdminReconcile(w http.ResponseWriter, r *http.Request) {
	if err := a.Campaigns.Reconcile(r.Context()); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"message": "campaign aggregates reconciled"})
}
