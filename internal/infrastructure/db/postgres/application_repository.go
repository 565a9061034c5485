package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// ApplicationRepository persists job applications in Postgres.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, application *domain.JobApplication) error {
	// Omit associations: Job and Applicant rows already exist and are
	// attached only for the response view model.
	err := r.db.WithContext(ctx).Omit("Job", "Applicant").Create(application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateApplication
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uint) (*domain.JobApplication, error) {
	var application domain.JobApplication
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Applicant").
		First(&application, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return &application, nil
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID uint) ([]domain.JobApplication, error) {
	var applications []domain.JobApplication
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("id").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}

func (r *ApplicationRepository) ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.JobApplication{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count applications: %w", err)
	}
	return count > 0, nil
}
