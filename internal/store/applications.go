package store

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/models"
)

// ListApplications returns every application owned by the user. No
// ordering is guaranteed.
func (s *Store) ListApplications(userID string) ([]models.Application, error) {
	var apps []models.Application
	if err := s.db.Where("user_id = ?", userID).Find(&apps).Error; err != nil {
		s.log.Error("list applications", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return apps, nil
}

// AddApplication inserts a manually entered application. A zero
// appliedDate defaults to today.
func (s *Store) AddApplication(userID, company, role, status, notes string, appliedDate time.Time) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}
	if appliedDate.IsZero() {
		appliedDate = today()
	}
	app := models.Application{
		UserID:      userID,
		Company:     company,
		Role:        role,
		Status:      status,
		Notes:       notes,
		AppliedDate: appliedDate,
	}
	if err := s.db.Create(&app).Error; err != nil {
		s.log.Error("add application", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &app, nil
}

// GetApplication returns one application by id, or ErrNotFound.
func (s *Store) GetApplication(id uint) (*models.Application, error) {
	var app models.Application
	if err := s.db.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("get application", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &app, nil
}

// UpdateApplicationStatus moves an application along the status graph.
// Returns ErrNotFound for an unknown id, ErrInvalidStatus for a value
// outside the enum, and ErrInvalidTransition when the graph forbids the
// move. A same-status update returns the record unchanged.
func (s *Store) UpdateApplicationStatus(id uint, status string) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}
	app, err := s.GetApplication(id)
	if err != nil {
		return nil, err
	}
	if app.Status == status {
		return app, nil
	}
	if !models.CanTransitionApplication(app.Status, status) {
		return nil, ErrInvalidTransition
	}
	if err := s.db.Model(app).Update("status", status).Error; err != nil {
		s.log.Error("update application status", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	app.Status = status
	return app, nil
}

// DeleteApplication removes an application and any linkage rows pointing
// at it, in one transaction. Deleting an unknown id reports ErrNotFound;
// the same policy holds for every delete in this package.
func (s *Store) DeleteApplication(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("application_id = ?", id).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Application{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.log.Error("delete application", zap.Uint("id", id), zap.Error(err))
	}
	return err
}

// SearchApplications returns the user's applications whose company or
// role contains term, case-insensitively. One query, so a record matching
// both fields appears once.
func (s *Store) SearchApplications(userID, term string) ([]models.Application, error) {
	like := "%" + strings.ToLower(term) + "%"
	var apps []models.Application
	err := s.db.
		Where("user_id = ? AND (lower(company) LIKE ? OR lower(role) LIKE ?)", userID, like, like).
		Find(&apps).Error
	if err != nil {
		s.log.Error("search applications", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return apps, nil
}
