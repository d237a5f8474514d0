package models

import "time"

// Application statuses
const (
	StatusApplied   = "applied"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
)

// ApplicationStatuses lists the valid statuses in lifecycle order.
var ApplicationStatuses = []string{StatusApplied, StatusInterview, StatusOffer, StatusRejected}

// Application is a job seeker's record of having applied somewhere.
// Entered manually or synthesized by applying to a JobPosting.
type Application struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;index;size:64" json:"user_id"`
	Applicant   Profile   `gorm:"foreignKey:UserID" json:"applicant,omitempty"`
	Company     string    `gorm:"not null" json:"company"`
	Role        string    `gorm:"not null" json:"role"`
	Status      string    `gorm:"not null;default:'applied'" json:"status"`
	Notes       string    `gorm:"type:text" json:"notes"`
	AppliedDate time.Time `json:"applied_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetUserID implements policy.Ownable.
func (a Application) GetUserID() string { return a.UserID }

// ValidApplicationStatus reports whether s is one of the four known statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// applicationTransitions is the forward-only status graph. Offer and
// rejected are terminal.
var applicationTransitions = map[string][]string{
	StatusApplied:   {StatusInterview, StatusRejected},
	StatusInterview: {StatusOffer, StatusRejected},
	StatusOffer:     {},
	StatusRejected:  {},
}

// CanTransitionApplication is the single authority on status changes.
// A same-status update is permitted as a no-op.
func CanTransitionApplication(from, to string) bool {
	if !ValidApplicationStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range applicationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
