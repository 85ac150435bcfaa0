// Package receipt renders human-readable records for verified donations.
// Callers must never hand it a non-Verified donation; the renderer enforces
// that as a hard guard.
package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"charity/internal/domain"
)

// Renderer produces PDF receipts.
type Renderer struct {
	orgName string
}

// NewRenderer creates a renderer stamping receipts with the organization name.
func NewRenderer(orgName string) *Renderer {
	if orgName == "" {
		orgName = "Charity Zakat Donation Platform"
	}
	return &Renderer{orgName: orgName}
}

// Render produces a PDF receipt for a verified donation. The amount is
// formatted with the grouping rules of the given locale.
func (r *Renderer) Render(d *domain.DonationDetail, locale string) ([]byte, error) {
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if d.Status != domain.DonationStatusVerified {
		return nil, domain.ErrNotVerified
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	printer := message.NewPrinter(tag)
	amount := printer.Sprintf("%v", number.Decimal(d.AmountInt))

	target := "General Fund"
	if d.CampaignTitle != nil {
		target = *d.CampaignTitle
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Receipt %s", d.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, r.orgName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Official Donation Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	rows := [][2]string{
		{"Receipt No.", d.ID},
		{"Donor", fmt.Sprintf("%s <%s>", d.DonorName, d.DonorEmail)},
		{"Towards", target},
		{"Amount", amount},
		{"Type", string(d.DonationType)},
		{"Category", string(d.Category)},
		{"Payment Method", string(d.PaymentMethod)},
		{"Status", string(d.Status)},
		{"Donated On", d.CreatedAt.Format(time.RFC1123)},
	}
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "Thank you for your generosity.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
