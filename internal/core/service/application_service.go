package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

// ApplicationService implements submitting and viewing job applications.
type ApplicationService struct {
	applications ports.ApplicationRepository
	jobs         ports.JobRepository
	logger       zerolog.Logger
}

func NewApplicationService(applications ports.ApplicationRepository, jobs ports.JobRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, logger: logger}
}

// Apply runs the submission sequence in its documented order: job lookup,
// cover letter check, self-application check, duplicate check, insert.
func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.JobApplication, error) {
	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.CoverLetter) == "" {
		return nil, domain.ErrCoverLetterRequired
	}

	if job.PostedByID == input.Applicant.ID {
		return nil, domain.ErrOwnJobApplication
	}

	exists, err := s.applications.ExistsByJobAndApplicant(ctx, input.JobID, input.Applicant.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateApplication
	}

	application := &domain.JobApplication{
		JobID:       job.ID,
		Job:         *job,
		ApplicantID: input.Applicant.ID,
		Applicant:   *input.Applicant,
		CoverLetter: input.CoverLetter,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		// Two concurrent first applications can both pass the pre-check;
		// the unique index rejects the loser.
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, domain.ErrDuplicateApplication
		}
		s.logger.Error().Err(err).Uint("job_id", input.JobID).Uint("applicant_id", input.Applicant.ID).Msg("failed to create application")
		return nil, err
	}

	s.logger.Info().Uint("application_id", application.ID).Uint("job_id", job.ID).Uint("applicant_id", input.Applicant.ID).Msg("application submitted")
	return application, nil
}

// ListForPoster returns all applications for a job; only its poster may
// view them.
func (s *ApplicationService) ListForPoster(ctx context.Context, jobID, actorID uint) ([]domain.JobApplication, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedByID != actorID {
		return nil, domain.ErrNotJobPoster
	}
	return s.applications.ListByJob(ctx, jobID)
}

// Get returns one application; only the job's poster or the applicant
// themselves may view it.
func (s *ApplicationService) Get(ctx context.Context, applicationID, actorID uint) (*domain.JobApplication, error) {
	application, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Job.PostedByID != actorID && application.ApplicantID != actorID {
		return nil, domain.ErrApplicationForbidden
	}
	return application, nil
}
