package store

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/models"
)

// ListJobPostings returns the postings owned by the user.
func (s *Store) ListJobPostings(userID string) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	if err := s.db.Where("user_id = ?", userID).Find(&postings).Error; err != nil {
		s.log.Error("list job postings", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return postings, nil
}

// AddJobPosting creates a posting with status active.
func (s *Store) AddJobPosting(userID, title, description, requirements string, deadline *time.Time) (*models.JobPosting, error) {
	posting := models.JobPosting{
		UserID:       userID,
		Title:        title,
		Description:  description,
		Requirements: requirements,
		Deadline:     deadline,
		Status:       models.PostingActive,
	}
	if err := s.db.Create(&posting).Error; err != nil {
		s.log.Error("add job posting", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &posting, nil
}

// GetJobPosting returns one posting with its poster preloaded, or
// ErrNotFound.
func (s *Store) GetJobPosting(id uint) (*models.JobPosting, error) {
	var posting models.JobPosting
	if err := s.db.Preload("Poster").First(&posting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("get job posting", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &posting, nil
}

// JobPostingUpdate carries the optional fields of a partial update.
type JobPostingUpdate struct {
	Title        *string
	Description  *string
	Requirements *string
	Deadline     *time.Time
	Status       *string
}

// UpdateJobPosting applies the set fields of upd. Status must be active
// or closed; the two are freely interchangeable.
func (s *Store) UpdateJobPosting(id uint, upd JobPostingUpdate) (*models.JobPosting, error) {
	if upd.Status != nil && !models.ValidPostingStatus(*upd.Status) {
		return nil, ErrInvalidStatus
	}
	var posting models.JobPosting
	if err := s.db.First(&posting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("get job posting for update", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	fields := map[string]interface{}{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Requirements != nil {
		fields["requirements"] = *upd.Requirements
	}
	if upd.Deadline != nil {
		fields["deadline"] = *upd.Deadline
	}
	if upd.Status != nil {
		fields["status"] = *upd.Status
	}
	if len(fields) == 0 {
		return &posting, nil
	}
	if err := s.db.Model(&posting).Updates(fields).Error; err != nil {
		s.log.Error("update job posting", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &posting, nil
}

// DeleteJobPosting removes a posting and its linkage rows in one
// transaction. Unknown id reports ErrNotFound.
func (s *Store) DeleteJobPosting(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_posting_id = ?", id).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.JobPosting{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.log.Error("delete job posting", zap.Uint("id", id), zap.Error(err))
	}
	return err
}

// ListAllJobPostings returns every posting on the board, optionally only
// active ones, with each poster's profile attached.
func (s *Store) ListAllJobPostings(activeOnly bool) ([]models.JobPosting, error) {
	q := s.db.Preload("Poster")
	if activeOnly {
		q = q.Where("status = ?", models.PostingActive)
	}
	var postings []models.JobPosting
	if err := q.Find(&postings).Error; err != nil {
		s.log.Error("list all job postings", zap.Error(err))
		return nil, err
	}
	return postings, nil
}

// SearchJobPostings matches term against title or description,
// case-insensitively. Single query; no duplicates.
func (s *Store) SearchJobPostings(term string) ([]models.JobPosting, error) {
	like := "%" + strings.ToLower(term) + "%"
	var postings []models.JobPosting
	err := s.db.Preload("Poster").
		Where("lower(title) LIKE ? OR lower(description) LIKE ?", like, like).
		Find(&postings).Error
	if err != nil {
		s.log.Error("search job postings", zap.Error(err))
		return nil, err
	}
	return postings, nil
}
