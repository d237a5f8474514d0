package store

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/models"
)

const noCoverLetter = "No cover letter provided"

// Applicant is one row of a provider's applicant review: the linkage
// joined to the full application and its owner's profile.
type Applicant struct {
	JobPostingID uint               `json:"job_posting_id"`
	JobTitle     string             `json:"job_title"`
	Application  models.Application `json:"application"`
	AppliedAt    time.Time          `json:"applied_at"`
}

// ApplyToJob runs the apply workflow in a single transaction: load the
// posting, reject a repeat application, synthesize the Application from
// the posting, then insert it together with the linkage row. Either both
// writes land or neither does.
func (s *Store) ApplyToJob(userID string, postingID uint, coverLetter string) (*models.Application, error) {
	var app models.Application
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var posting models.JobPosting
		if err := tx.Preload("Poster").First(&posting, postingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var dupes int64
		err := tx.Model(&models.JobApplication{}).
			Joins("JOIN applications ON applications.id = job_applications.application_id").
			Where("job_applications.job_posting_id = ? AND applications.user_id = ?", postingID, userID).
			Count(&dupes).Error
		if err != nil {
			return err
		}
		if dupes > 0 {
			return ErrAlreadyApplied
		}

		company := posting.Poster.Username
		if company == "" {
			company = "Unknown Company"
		}
		if coverLetter == "" {
			coverLetter = noCoverLetter
		}
		now := time.Now()
		notes := fmt.Sprintf("Applied to '%s' via job board.\n\nJob Description: %s\n\nCover Letter: %s",
			posting.Title, posting.Description, coverLetter)
		app = models.Application{
			UserID:      userID,
			Company:     company,
			Role:        posting.Title,
			Status:      models.StatusApplied,
			Notes:       notes,
			AppliedDate: today(),
		}
		if err := tx.Create(&app).Error; err != nil {
			return err
		}
		link := models.JobApplication{
			JobPostingID:  posting.ID,
			ApplicationID: app.ID,
			AppliedAt:     now,
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrAlreadyApplied) {
			s.log.Error("apply to job", zap.String("user_id", userID), zap.Uint("posting_id", postingID), zap.Error(err))
		}
		return nil, err
	}
	return &app, nil
}

// ListApplicantsForPosting follows the linkage rows of one posting to the
// applications behind them, with each applicant's profile attached.
// Returns an empty slice when nobody has applied.
func (s *Store) ListApplicantsForPosting(postingID uint) ([]Applicant, error) {
	posting, err := s.GetJobPosting(postingID)
	if err != nil {
		return nil, err
	}
	var links []models.JobApplication
	err = s.db.Preload("Application.Applicant").
		Where("job_posting_id = ?", postingID).
		Find(&links).Error
	if err != nil {
		s.log.Error("list applicants for posting", zap.Uint("posting_id", postingID), zap.Error(err))
		return nil, err
	}
	applicants := make([]Applicant, 0, len(links))
	for _, l := range links {
		applicants = append(applicants, Applicant{
			JobPostingID: postingID,
			JobTitle:     posting.Title,
			Application:  l.Application,
			AppliedAt:    l.AppliedAt,
		})
	}
	return applicants, nil
}

// ListApplicantsForProvider flattens the applicants of every posting the
// provider owns into a single list, posting title attached to each row.
func (s *Store) ListApplicantsForProvider(userID string) ([]Applicant, error) {
	postings, err := s.ListJobPostings(userID)
	if err != nil {
		return nil, err
	}
	all := make([]Applicant, 0)
	for _, p := range postings {
		applicants, err := s.ListApplicantsForPosting(p.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, applicants...)
	}
	return all, nil
}

// OwnsLinkedPosting reports whether the application is linked to any
// posting owned by providerID. Providers may update the status of such
// applications.
func (s *Store) OwnsLinkedPosting(providerID string, applicationID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.JobApplication{}).
		Joins("JOIN job_postings ON job_postings.id = job_applications.job_posting_id").
		Where("job_applications.application_id = ? AND job_postings.user_id = ?", applicationID, providerID).
		Count(&count).Error
	if err != nil {
		s.log.Error("check linked posting ownership", zap.Uint("application_id", applicationID), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}
