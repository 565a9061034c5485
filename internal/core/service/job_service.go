package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

// JobService implements listing, CRUD and search for job postings.
type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.repo.List(ctx)
}

func (s *JobService) Create(ctx context.Context, posterID uint, input ports.CreateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		Description: input.Description,
		Category:    input.Category,
		PostedByID:  posterID,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Uint("poster_id", posterID).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Uint("job_id", job.ID).Uint("poster_id", posterID).Msg("job created")
	return job, nil
}

func (s *JobService) Get(ctx context.Context, id uint) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the whitelisted mutable fields. Only the poster may
// update a job.
func (s *JobService) Update(ctx context.Context, id, actorID uint, input ports.UpdateJobInput) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.PostedByID != actorID {
		return nil, domain.ErrNotJobPoster
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Company != nil {
		job.Company = *input.Company
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Category != nil {
		job.Category = input.Category
	}

	if err := s.repo.Update(ctx, job); err != nil {
		s.logger.Error().Err(err).Uint("job_id", id).Msg("failed to update job")
		return nil, err
	}

	s.logger.Info().Uint("job_id", id).Uint("actor_id", actorID).Msg("job updated")
	return job, nil
}

// Delete removes the job and, via the store cascade, its applications.
// Only the poster may delete a job.
func (s *JobService) Delete(ctx context.Context, id, actorID uint) error {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if job.PostedByID != actorID {
		return domain.ErrNotJobPoster
	}

	if err := s.repo.Delete(ctx, job); err != nil {
		s.logger.Error().Err(err).Uint("job_id", id).Msg("failed to delete job")
		return err
	}

	s.logger.Info().Uint("job_id", id).Uint("actor_id", actorID).Msg("job deleted")
	return nil
}

func (s *JobService) Search(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	return s.repo.Search(ctx, filter)
}
