// Package store mediates every read and write against the database.
// Operations return plain model values and errors; the sentinel errors
// below are the only failures callers are expected to branch on, anything
// else is a store problem whose cause is logged here and reported
// generically upstream.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/models"
)

var (
	// ErrNotFound marks a lookup or mutation against an id that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyApplied marks a duplicate application to the same posting.
	ErrAlreadyApplied = errors.New("already applied to this job posting")
	// ErrInvalidTransition marks a status change the transition graph forbids.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidStatus marks a status value outside the enum.
	ErrInvalidStatus = errors.New("invalid status")
)

// Store wraps a gorm connection. Safe for concurrent use; the database is
// the only shared state and updates are last-write-wins.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log}
}

// GetProfile returns the profile for id, or ErrNotFound.
func (s *Store) GetProfile(id string) (*models.Profile, error) {
	var p models.Profile
	if err := s.db.Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("get profile", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// CreateProfile inserts a profile under the caller-supplied id. If the
// store rejects that id, it retries once letting a fresh one be issued, so
// the caller always gets a usable profile or an explicit error. The
// returned profile's ID must therefore be read back rather than assumed.
func (s *Store) CreateProfile(id, username, email, role string) (*models.Profile, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidStatus
	}
	p := models.Profile{ID: id, Username: username, Email: email, Role: role}
	if err := s.db.Create(&p).Error; err != nil {
		s.log.Warn("create profile with supplied id failed, retrying with fresh id",
			zap.String("id", id), zap.Error(err))
		p = models.Profile{ID: uuid.NewString(), Username: username, Email: email, Role: role}
		if err := s.db.Create(&p).Error; err != nil {
			s.log.Error("create profile", zap.String("email", email), zap.Error(err))
			return nil, err
		}
	}
	return &p, nil
}

// GetProfileByEmail is used by login; returns ErrNotFound when absent.
func (s *Store) GetProfileByEmail(email string) (*models.Profile, error) {
	var p models.Profile
	if err := s.db.Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("get profile by email", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// SaveCredential upserts the password hash for a user.
func (s *Store) SaveCredential(userID, passwordHash string) error {
	cred := models.Credential{UserID: userID, PasswordHash: passwordHash}
	err := s.db.Where("user_id = ?", userID).
		Assign(models.Credential{PasswordHash: passwordHash}).
		FirstOrCreate(&cred).Error
	if err != nil {
		s.log.Error("save credential", zap.String("user_id", userID), zap.Error(err))
	}
	return err
}

// GetCredential returns the stored hash for a user, or ErrNotFound.
func (s *Store) GetCredential(userID string) (*models.Credential, error) {
	var c models.Credential
	if err := s.db.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("get credential", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// today truncates now to the calendar date.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
