package domain

import "time"

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	TotalVerifiedAmount int64
	TotalDonors         int64
	ActiveCampaigns     int64
	PendingDonations    int64
}

// UserDonationSummary joins a user with aggregate donation figures. The
// credential hash never appears here.
type UserDonationSummary struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Role           UserRole
	CreatedAt      time.Time
	TotalDonations int64
	TotalAmount    int64
	VerifiedAmount int64
}
