package store

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(setupTestDB(t), nil)
}

func seedProfile(t *testing.T, s *Store, id, username, email, role string) *models.Profile {
	t.Helper()
	p, err := s.CreateProfile(id, username, email, role)
	if err != nil {
		t.Fatalf("seed profile %s: %v", username, err)
	}
	return p
}

func TestCreateAndGetProfile(t *testing.T) {
	s := newTestStore(t)
	created := seedProfile(t, s, "user-1", "ada", "ada@example.com", models.RoleJobseeker)
	if created.ID != "user-1" {
		t.Fatalf("expected supplied id kept, got %s", created.ID)
	}
	got, err := s.GetProfile("user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "ada" || got.Email != "ada@example.com" || got.Role != models.RoleJobseeker {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetProfile("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateProfileRetriesWithFreshID(t *testing.T) {
	s := newTestStore(t)
	seedProfile(t, s, "taken", "first", "first@example.com", models.RoleJobseeker)

	// Same id, different identity: the insert is rejected and retried with
	// a store-issued id instead of failing the caller.
	p, err := s.CreateProfile("taken", "second", "second@example.com", models.RoleJobprovider)
	if err != nil {
		t.Fatalf("expected fallback creation, got %v", err)
	}
	if p.ID == "taken" || p.ID == "" {
		t.Fatalf("expected a fresh id, got %q", p.ID)
	}
	if p.Username != "second" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestCreateProfileRejectsUnknownRole(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateProfile("u", "x", "x@example.com", "admin"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCredentialRoundTrip(t *testing.T) {
	s := newTestStore(t)
	seedProfile(t, s, "u1", "ada", "ada@example.com", models.RoleJobseeker)
	if err := s.SaveCredential("u1", "hash-a"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveCredential("u1", "hash-b"); err != nil {
		t.Fatalf("resave: %v", err)
	}
	c, err := s.GetCredential("u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c.PasswordHash != "hash-b" {
		t.Fatalf("expected updated hash, got %s", c.PasswordHash)
	}
	if _, err := s.GetCredential("nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
