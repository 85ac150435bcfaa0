package domain

import "time"

// DonationStatus enumerates donation lifecycle states.
type DonationStatus string

const (
	DonationStatusPending  DonationStatus = "Pending"
	DonationStatusVerified DonationStatus = "Verified"
)

// DonationType enumerates the religious classification of a donation.
type DonationType string

const (
	DonationTypeZakat   DonationType = "Zakat"
	DonationTypeSadqah  DonationType = "Sadqah"
	DonationTypeFitra   DonationType = "Fitra"
	DonationTypeGeneral DonationType = "General"
)

// DonationCategory enumerates the cause a donation supports.
type DonationCategory string

const (
	DonationCategoryFood      DonationCategory = "Food"
	DonationCategoryEducation DonationCategory = "Education"
	DonationCategoryMedical   DonationCategory = "Medical"
	DonationCategoryGeneral   DonationCategory = "General"
)

// PaymentMethod enumerates how a donation was paid.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "Cash"
	PaymentMethodBank   PaymentMethod = "Bank"
	PaymentMethodOnline PaymentMethod = "Online"
)

// Donation represents a supporter contribution record. CampaignID is nil for
// general-fund donations, which never touch any campaign aggregate.
type Donation struct {
	ID            string
	UserID        string
	CampaignID    *string
	AmountInt     int64
	DonationType  DonationType
	Category      DonationCategory
	PaymentMethod PaymentMethod
	Status        DonationStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DonationDetail is a donation annotated with donor identity and, when the
// donation targets a campaign, the campaign title.
type DonationDetail struct {
	Donation
	DonorName     string
	DonorEmail    string
	CampaignTitle *string
}

// DonationFilter narrows admin donation listings. Nil fields are ignored.
// DonorIDs restricts to a resolved set of donors; an empty non-nil slice
// matches nothing.
type DonationFilter struct {
	DonationType *DonationType
	Status       *DonationStatus
	DateFrom     *time.Time
	DateTo       *time.Time
	DonorIDs     []string
}

// ValidDonationType reports whether t is a recognized donation type.
func ValidDonationType(t DonationType) bool {
	switch t {
	case DonationTypeZakat, DonationTypeSadqah, DonationTypeFitra, DonationTypeGeneral:
		return true
	}
	return false
}

// ValidDonationCategory reports whether c is a recognized category.
func ValidDonationCategory(c DonationCategory) bool {
	switch c {
	case DonationCategoryFood, DonationCategoryEducation, DonationCategoryMedical, DonationCategoryGeneral:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a recognized payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBank, PaymentMethodOnline:
		return true
	}
	return false
}
