package models

import "time"

// JobPosting statuses
const (
	PostingActive = "active"
	PostingClosed = "closed"
)

// JobPosting is a job provider's published opening.
type JobPosting struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       string     `gorm:"not null;index;size:64" json:"user_id"`
	Poster       Profile    `gorm:"foreignKey:UserID" json:"poster,omitempty"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Requirements string     `gorm:"type:text" json:"requirements"`
	Deadline     *time.Time `json:"deadline"`
	Status       string     `gorm:"not null;default:'active'" json:"status"` // active, closed
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// GetUserID implements policy.Ownable.
func (p JobPosting) GetUserID() string { return p.UserID }

// ValidPostingStatus reports whether s is active or closed.
func ValidPostingStatus(s string) bool {
	return s == PostingActive || s == PostingClosed
}
