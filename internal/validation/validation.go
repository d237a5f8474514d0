// Package validation holds the pure input checks shared by the API layer.
// Every function returns an ordered list of human-readable messages; an
// empty list signals success. Nothing here touches the database or panics.
package validation

import (
	"strings"
	"time"

	"github.com/hirepath/hirepath/internal/models"
)

// Application validates the fields of a manually entered application.
// Order of messages: company, role, status.
func Application(company, role, status string) []string {
	var errs []string
	if strings.TrimSpace(company) == "" {
		errs = append(errs, "Company name is required")
	}
	if strings.TrimSpace(role) == "" {
		errs = append(errs, "Job role is required")
	}
	if !models.ValidApplicationStatus(status) {
		errs = append(errs, "Invalid status")
	}
	return errs
}

// JobPosting validates a posting before creation. A nil deadline is
// allowed; a set deadline must not be before today's calendar date.
func JobPosting(title, description string, deadline *time.Time) []string {
	var errs []string
	if strings.TrimSpace(title) == "" {
		errs = append(errs, "Job title is required")
	}
	if strings.TrimSpace(description) == "" {
		errs = append(errs, "Job description is required")
	}
	if deadline != nil && dateOnly(*deadline).Before(dateOnly(time.Now())) {
		errs = append(errs, "Deadline cannot be in the past")
	}
	return errs
}

// dateOnly drops the time of day and normalizes the location so that a
// UTC-parsed deadline compares correctly against local "now".
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
