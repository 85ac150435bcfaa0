package domain

import "time"

// CampaignStatus enumerates campaign lifecycle states.
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "Active"
	CampaignStatusCompleted CampaignStatus = "Completed"
)

// Campaign represents a fundraising drive with a goal and a deadline.
// CollectedAmount is maintained exclusively by donation verification and
// reconciliation, never by campaign edits.
type Campaign struct {
	ID              string
	Title           string
	Description     string
	GoalAmount      int64
	CollectedAmount int64
	Deadline        time.Time
	Status          CampaignStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Expired reports whether the campaign deadline lies before now. The stored
// status may lag behind this predicate until a sweep runs.
func (c Campaign) Expired(now time.Time) bool {
	return c.Deadline.Before(now)
}

// CampaignUpdate carries optional campaign edits. Nil fields keep the stored
// value. CollectedAmount is deliberately absent.
type CampaignUpdate struct {
	Title       *string
	Description *string
	GoalAmount  *int64
	Deadline    *time.Time
	Status      *CampaignStatus
}
