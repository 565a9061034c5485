package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

type stubJobRepo struct {
	jobs   map[uint]*domain.Job
	nextID uint
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[uint]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) error {
	r.nextID++
	job.ID = r.nextID
	job.CreatedAt = time.Now()
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id uint) (*domain.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *job
	return &clone, nil
}

func (r *stubJobRepo) List(_ context.Context) ([]domain.Job, error) {
	var out []domain.Job
	for id := uint(1); id <= r.nextID; id++ {
		if job, ok := r.jobs[id]; ok {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *stubJobRepo) Search(_ context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	contains := func(haystack, needle string) bool {
		return needle == "" || strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}
	var out []domain.Job
	for id := uint(1); id <= r.nextID; id++ {
		job, ok := r.jobs[id]
		if !ok {
			continue
		}
		if contains(job.Title, filter.Title) &&
			contains(job.Company, filter.Company) &&
			contains(job.Location, filter.Location) &&
			contains(job.Description, filter.Keywords) {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *stubJobRepo) Update(_ context.Context, job *domain.Job) error {
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *stubJobRepo) Delete(_ context.Context, job *domain.Job) error {
	delete(r.jobs, job.ID)
	return nil
}

func seedJob(t *testing.T, repo *stubJobRepo, posterID uint) *domain.Job {
	t.Helper()
	job := &domain.Job{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Build APIs",
		PostedByID:  posterID,
	}
	if err := repo.Create(context.Background(), job); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func strptr(s string) *string { return &s }

func TestJobService_Create(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	job, err := svc.Create(context.Background(), 7, ports.CreateJobInput{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Build APIs",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if job.PostedByID != 7 {
		t.Fatalf("expected poster 7, got %d", job.PostedByID)
	}
}

func TestJobService_Get_NotFound(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), 42); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_Update_NotPoster(t *testing.T) {
	repo := newStubJobRepo()
	job := seedJob(t, repo, 1)
	svc := NewJobService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), job.ID, 2, ports.UpdateJobInput{Title: strptr("Hijacked")})
	if err != domain.ErrNotJobPoster {
		t.Fatalf("expected ErrNotJobPoster, got %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), job.ID)
	if stored.Title != "Backend Engineer" {
		t.Fatalf("job mutated by non-poster")
	}
}

func TestJobService_Update_AppliesOnlyProvidedFields(t *testing.T) {
	repo := newStubJobRepo()
	job := seedJob(t, repo, 1)
	svc := NewJobService(repo, zerolog.Nop())

	updated, err := svc.Update(context.Background(), job.ID, 1, ports.UpdateJobInput{
		Title: strptr("Staff Engineer"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Staff Engineer" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.Company != "Acme" || updated.Location != "Remote" || updated.Description != "Build APIs" {
		t.Fatalf("unset fields changed: %+v", updated)
	}
}

func TestJobService_Delete_NotPoster(t *testing.T) {
	repo := newStubJobRepo()
	job := seedJob(t, repo, 1)
	svc := NewJobService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), job.ID, 2); err != domain.ErrNotJobPoster {
		t.Fatalf("expected ErrNotJobPoster, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), job.ID); err != nil {
		t.Fatalf("job deleted by non-poster")
	}
}

func TestJobService_Delete(t *testing.T) {
	repo := newStubJobRepo()
	job := seedJob(t, repo, 1)
	svc := NewJobService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), job.ID, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), job.ID); err != domain.ErrJobNotFound {
		t.Fatalf("expected job gone, got %v", err)
	}
}

func TestJobService_Search_FiltersByTitle(t *testing.T) {
	repo := newStubJobRepo()
	seedJob(t, repo, 1)
	other := &domain.Job{Title: "Accountant", Company: "Ledger Co", Location: "Paris", Description: "Numbers", PostedByID: 1}
	if err := repo.Create(context.Background(), other); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	svc := NewJobService(repo, zerolog.Nop())

	jobs, err := svc.Search(context.Background(), ports.JobFilter{Title: "engineer"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Backend Engineer" {
		t.Fatalf("unexpected result: %+v", jobs)
	}
}
