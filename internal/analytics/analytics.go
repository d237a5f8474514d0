// Package analytics derives aggregate views from a seeker's applications.
// Functions are pure; the caller supplies the reference date so results
// stay deterministic under test.
package analytics

import (
	"math"
	"time"

	"github.com/hirepath/hirepath/internal/models"
)

// Follow-up thresholds in days since the applied date.
const (
	followupAfterApplied   = 7
	followupAfterInterview = 3
)

// Stats summarizes a set of applications by status.
type Stats struct {
	Total       int     `json:"total"`
	Applied     int     `json:"applied"`
	Interview   int     `json:"interview"`
	Offer       int     `json:"offer"`
	Rejected    int     `json:"rejected"`
	SuccessRate float64 `json:"success_rate"` // offers / total * 100, 2dp
}

// ComputeStats partitions apps by status. Unknown statuses still count
// toward Total but feed none of the named counters.
func ComputeStats(apps []models.Application) Stats {
	s := Stats{Total: len(apps)}
	if s.Total == 0 {
		return s
	}
	for _, a := range apps {
		switch a.Status {
		case models.StatusApplied:
			s.Applied++
		case models.StatusInterview:
			s.Interview++
		case models.StatusOffer:
			s.Offer++
		case models.StatusRejected:
			s.Rejected++
		}
	}
	s.SuccessRate = math.Round(float64(s.Offer)/float64(s.Total)*100*100) / 100
	return s
}

// UpcomingFollowups returns the applications due for renewed contact:
// 7+ days in "applied", or 3+ days in "interview". Input order is kept.
func UpcomingFollowups(apps []models.Application, today time.Time) []models.Application {
	due := make([]models.Application, 0)
	for _, a := range apps {
		days := daysBetween(a.AppliedDate, today)
		switch {
		case a.Status == models.StatusApplied && days >= followupAfterApplied:
			due = append(due, a)
		case a.Status == models.StatusInterview && days >= followupAfterInterview:
			due = append(due, a)
		}
	}
	return due
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	a = dateOnly(a)
	b = dateOnly(b)
	return int(b.Sub(a).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
