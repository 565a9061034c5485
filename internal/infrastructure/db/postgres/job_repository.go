package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

// JobRepository persists job postings in Postgres. All finders preload
// the poster so view models can be built without extra queries.
type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	// Reload the poster association for the response view model.
	return r.db.WithContext(ctx).Preload("PostedBy").First(job, job.ID).Error
}

func (r *JobRepository) FindByID(ctx context.Context, id uint) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.WithContext(ctx).Preload("PostedBy").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &job, nil
}

func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.WithContext(ctx).Preload("PostedBy").Order("id").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// Search ANDs the supplied filters as case-insensitive substring matches.
// An empty filter matches all jobs.
func (r *JobRepository) Search(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	q := r.db.WithContext(ctx).Model(&domain.Job{}).Preload("PostedBy").Order("id")
	if filter.Title != "" {
		q = q.Where("title ILIKE ?", likePattern(filter.Title))
	}
	if filter.Company != "" {
		q = q.Where("company ILIKE ?", likePattern(filter.Company))
	}
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", likePattern(filter.Location))
	}
	if filter.Keywords != "" {
		q = q.Where("description ILIKE ?", likePattern(filter.Keywords))
	}

	var jobs []domain.Job
	if err := q.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	return jobs, nil
}

// likePattern wraps filter text for a substring match, escaping the LIKE
// metacharacters so user input always matches literally.
func likePattern(s string) string {
	s = likeEscaper.Replace(s)
	return "%" + s + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, job *domain.Job) error {
	if err := r.db.WithContext(ctx).Delete(job).Error; err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}
