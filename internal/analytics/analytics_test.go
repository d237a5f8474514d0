package analytics

import (
	"testing"
	"time"

	"github.com/hirepath/hirepath/internal/models"
)

func app(status string, appliedDaysAgo int, today time.Time) models.Application {
	return models.Application{
		Status:      status,
		AppliedDate: today.AddDate(0, 0, -appliedDaysAgo),
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	if s.Total != 0 || s.Applied != 0 || s.Interview != 0 || s.Offer != 0 || s.Rejected != 0 {
		t.Fatalf("expected zero counts, got %+v", s)
	}
	if s.SuccessRate != 0 {
		t.Fatalf("expected zero success rate, got %v", s.SuccessRate)
	}
}

func TestComputeStatsCounts(t *testing.T) {
	today := time.Now()
	apps := []models.Application{
		app(models.StatusApplied, 1, today),
		app(models.StatusInterview, 2, today),
		app(models.StatusOffer, 3, today),
		app(models.StatusRejected, 4, today),
	}
	s := ComputeStats(apps)
	if s.Total != 4 {
		t.Fatalf("expected total 4, got %d", s.Total)
	}
	if s.Applied != 1 || s.Interview != 1 || s.Offer != 1 || s.Rejected != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.SuccessRate != 25.0 {
		t.Fatalf("expected success rate 25.0, got %v", s.SuccessRate)
	}
}

func TestComputeStatsUnknownStatus(t *testing.T) {
	today := time.Now()
	apps := []models.Application{
		app("withdrawn", 1, today),
		app(models.StatusOffer, 1, today),
		app(models.StatusOffer, 2, today),
	}
	s := ComputeStats(apps)
	if s.Total != 3 {
		t.Fatalf("expected total 3 including unknown status, got %d", s.Total)
	}
	if sum := s.Applied + s.Interview + s.Offer + s.Rejected; sum > s.Total {
		t.Fatalf("named counters exceed total: %+v", s)
	}
	// 2/3 * 100 rounded to 2dp
	if s.SuccessRate != 66.67 {
		t.Fatalf("expected success rate 66.67, got %v", s.SuccessRate)
	}
}

func TestUpcomingFollowupsBoundaries(t *testing.T) {
	today := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		app     models.Application
		include bool
	}{
		{"applied 7 days ago", app(models.StatusApplied, 7, today), true},
		{"applied 6 days ago", app(models.StatusApplied, 6, today), false},
		{"interview 3 days ago", app(models.StatusInterview, 3, today), true},
		{"interview 2 days ago", app(models.StatusInterview, 2, today), false},
		{"offer 30 days ago", app(models.StatusOffer, 30, today), false},
		{"rejected 30 days ago", app(models.StatusRejected, 30, today), false},
	}
	for _, tc := range cases {
		got := UpcomingFollowups([]models.Application{tc.app}, today)
		if (len(got) == 1) != tc.include {
			t.Fatalf("%s: include=%v got %d results", tc.name, tc.include, len(got))
		}
	}
}

func TestUpcomingFollowupsPreservesOrder(t *testing.T) {
	today := time.Now()
	a := app(models.StatusApplied, 10, today)
	a.Company = "First"
	b := app(models.StatusInterview, 5, today)
	b.Company = "Second"
	got := UpcomingFollowups([]models.Application{a, b}, today)
	if len(got) != 2 {
		t.Fatalf("expected 2 followups, got %d", len(got))
	}
	if got[0].Company != "First" || got[1].Company != "Second" {
		t.Fatalf("input order not preserved: %v, %v", got[0].Company, got[1].Company)
	}
}
