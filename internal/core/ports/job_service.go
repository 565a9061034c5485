package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// CreateJobInput carries the validated fields for a new posting.
type CreateJobInput struct {
	Title       string
	Company     string
	Location    string
	Description string
	Category    *string
}

// UpdateJobInput is the explicit set of mutable job fields. Nil means
// leave the field unchanged.
type UpdateJobInput struct {
	Title       *string
	Company     *string
	Location    *string
	Description *string
	Category    *string
}

// JobService defines use-case operations for job postings.
type JobService interface {
	List(ctx context.Context) ([]domain.Job, error)
	Create(ctx context.Context, posterID uint, input CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id uint) (*domain.Job, error)
	// Update and Delete are restricted to the job's poster.
	Update(ctx context.Context, id, actorID uint, input UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, id, actorID uint) error
	Search(ctx context.Context, filter JobFilter) ([]domain.Job, error)
}
