package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// ApplicationRepository defines persistence operations for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.JobApplication) error
	FindByID(ctx context.Context, id uint) (*domain.JobApplication, error)
	ListByJob(ctx context.Context, jobID uint) ([]domain.JobApplication, error)
	ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uint) (bool, error)
}
