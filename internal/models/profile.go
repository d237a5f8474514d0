package models

import "time"

// Profile roles
const (
	RoleJobseeker   = "jobseeker"
	RoleJobprovider = "jobprovider"
)

// Profile is a user identity record. The ID is an opaque string issued at
// signup; the store never derives or interprets it.
type Profile struct {
	ID        string `gorm:"primaryKey;size:64"`
	Username  string `gorm:"not null;index"`
	Email     string `gorm:"unique;not null;index"`
	Role      string `gorm:"not null"` // jobseeker, jobprovider
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Credential carries the password hash separately from the profile so the
// profiles table keeps its public shape.
type Credential struct {
	UserID       string `gorm:"primaryKey;size:64"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole reports whether r is a known profile role.
func ValidRole(r string) bool {
	return r == RoleJobseeker || r == RoleJobprovider
}
