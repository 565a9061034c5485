package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// JobFilter carries the optional search parameters. Non-empty fields are
// ANDed together as case-insensitive substring matches; Keywords matches
// against the description.
type JobFilter struct {
	Title    string
	Company  string
	Location string
	Keywords string
}

// JobRepository defines persistence operations for job postings.
// Finders load the poster association so view models can be built.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	FindByID(ctx context.Context, id uint) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	Search(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	// Delete removes the job; its applications are removed by the
	// store-level cascade.
	Delete(ctx context.Context, job *domain.Job) error
}
