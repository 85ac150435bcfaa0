package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity/internal/middleware"
)

// ReceiptDownload renders a PDF receipt for a verified donation. Only the
// donation's owner or an admin may download it.
func (a *App) ReceiptDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, err := a.Ledger.Get(r.Context(), id)
	if err != nil {
		a.domainError(w, err)
		return
	}
	if d.UserID != a.currentUserID(r) && middleware.RoleFromContext(r.Context()) != "admin" {
		a.error(w, http.StatusForbidden, "forbidden", "not authorized to download this receipt")
		return
	}

	pdf, err := a.Receipts.Render(d, middleware.LocaleFromContext(r.Context()))
	if err != nil {
		a.domainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", d.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
