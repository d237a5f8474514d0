package store

import (
	"errors"
	"testing"
	"time"

	"github.com/hirepath/hirepath/internal/models"
)

func strptr(s string) *string { return &s }

func TestAddJobPostingDefaultsActive(t *testing.T) {
	s := newTestStore(t)
	seedProfile(t, s, "prov", "acme", "jobs@acme.com", models.RoleJobprovider)

	deadline := time.Now().AddDate(0, 1, 0)
	p, err := s.AddJobPosting("prov", "Backend Dev", "Build APIs", "Go, SQL", &deadline)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.Status != models.PostingActive {
		t.Fatalf("expected active default, got %s", p.Status)
	}
	if p.Deadline == nil {
		t.Fatalf("deadline not persisted")
	}
}

func TestUpdateJobPostingStatusToggle(t *testing.T) {
	s := newTestStore(t)
	p, err := s.AddJobPosting("prov", "Backend Dev", "Build APIs", "", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	closed, err := s.UpdateJobPosting(p.ID, JobPostingUpdate{Status: strptr(models.PostingClosed)})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed.Status != models.PostingClosed {
		t.Fatalf("expected closed, got %s", closed.Status)
	}

	// active <-> closed is freely reversible
	reopened, err := s.UpdateJobPosting(p.ID, JobPostingUpdate{Status: strptr(models.PostingActive)})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Status != models.PostingActive {
		t.Fatalf("expected active, got %s", reopened.Status)
	}
}

func TestUpdateJobPostingRejectsBadStatus(t *testing.T) {
	s := newTestStore(t)
	p, _ := s.AddJobPosting("prov", "Backend Dev", "Build APIs", "", nil)
	if _, err := s.UpdateJobPosting(p.ID, JobPostingUpdate{Status: strptr("archived")}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateJobPostingPartialFields(t *testing.T) {
	s := newTestStore(t)
	p, _ := s.AddJobPosting("prov", "Backend Dev", "Build APIs", "Go", nil)
	upd, err := s.UpdateJobPosting(p.ID, JobPostingUpdate{Title: strptr("Senior Backend Dev")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Title != "Senior Backend Dev" {
		t.Fatalf("title not updated: %+v", upd)
	}
	if upd.Description != "Build APIs" || upd.Requirements != "Go" {
		t.Fatalf("untouched fields changed: %+v", upd)
	}
}

func TestUpdateJobPostingNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.UpdateJobPosting(404, JobPostingUpdate{Status: strptr(models.PostingClosed)}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteJobPostingReportsNotFoundOnRepeat(t *testing.T) {
	s := newTestStore(t)
	p, _ := s.AddJobPosting("prov", "Backend Dev", "Build APIs", "", nil)
	if err := s.DeleteJobPosting(p.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := s.DeleteJobPosting(p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}

func TestListAllJobPostingsActiveFilterAndEnrichment(t *testing.T) {
	s := newTestStore(t)
	seedProfile(t, s, "prov", "acme", "jobs@acme.com", models.RoleJobprovider)
	open, _ := s.AddJobPosting("prov", "Backend Dev", "Build APIs", "", nil)
	stale, _ := s.AddJobPosting("prov", "Old Role", "Filled", "", nil)
	if _, err := s.UpdateJobPosting(stale.ID, JobPostingUpdate{Status: strptr(models.PostingClosed)}); err != nil {
		t.Fatalf("close: %v", err)
	}

	active, err := s.ListAllJobPostings(true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].ID != open.ID {
		t.Fatalf("unexpected active postings: %+v", active)
	}
	if active[0].Poster.Username != "acme" || active[0].Poster.Email != "jobs@acme.com" {
		t.Fatalf("poster not enriched: %+v", active[0].Poster)
	}

	all, err := s.ListAllJobPostings(false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(all))
	}
}

func TestSearchJobPostingsDeduplicates(t *testing.T) {
	s := newTestStore(t)
	seedProfile(t, s, "prov", "acme", "jobs@acme.com", models.RoleJobprovider)
	// Term appears in both title and description; one result expected.
	if _, err := s.AddJobPosting("prov", "Go Developer", "Write Go services", "", nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.AddJobPosting("prov", "Designer", "Figma all day", "", nil)

	got, err := s.SearchJobPostings("go")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one result, got %d", len(got))
	}
	if got[0].Poster.Username != "acme" {
		t.Fatalf("poster not enriched in search: %+v", got[0])
	}
}
