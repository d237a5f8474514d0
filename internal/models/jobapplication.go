package models

import "time"

// JobApplication links an Application to the JobPosting it answered.
// Created inside the apply transaction, never mutated afterwards, and
// removed together with either parent record.
type JobApplication struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	JobPostingID  uint      `gorm:"not null;index" json:"job_posting_id"`
	ApplicationID uint      `gorm:"not null;index" json:"application_id"`
	AppliedAt     time.Time `json:"applied_at"`

	JobPosting  JobPosting  `gorm:"foreignKey:JobPostingID" json:"-"`
	Application Application `gorm:"foreignKey:ApplicationID" json:"-"`
}

// All returns every model for AutoMigrate, dependency order first.
func All() []interface{} {
	return []interface{}{
		&Profile{}, &Credential{}, &Application{}, &JobPosting{}, &JobApplication{},
	}
}
