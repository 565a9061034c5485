package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// ApplyInput carries the data needed to submit an application. Applicant
// is the authenticated user resolved by the auth boundary.
type ApplyInput struct {
	JobID       uint
	Applicant   *domain.User
	CoverLetter string
}

// ApplicationService defines use-case operations for job applications.
type ApplicationService interface {
	Apply(ctx context.Context, input ApplyInput) (*domain.JobApplication, error)
	// ListForPoster returns all applications for the job; only the
	// job's poster may call it.
	ListForPoster(ctx context.Context, jobID, actorID uint) ([]domain.JobApplication, error)
	// Get returns one application; only the job's poster or the
	// applicant may view it.
	Get(ctx context.Context, applicationID, actorID uint) (*domain.JobApplication, error)
}
