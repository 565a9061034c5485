package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

type stubJobService struct {
	listFn   func(ctx context.Context) ([]domain.Job, error)
	createFn func(ctx context.Context, posterID uint, input ports.CreateJobInput) (*domain.Job, error)
	getFn    func(ctx context.Context, id uint) (*domain.Job, error)
	updateFn func(ctx context.Context, id, actorID uint, input ports.UpdateJobInput) (*domain.Job, error)
	deleteFn func(ctx context.Context, id, actorID uint) error
	searchFn func(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error)
}

func (s *stubJobService) List(ctx context.Context) ([]domain.Job, error) { return s.listFn(ctx) }

func (s *stubJobService) Create(ctx context.Context, posterID uint, input ports.CreateJobInput) (*domain.Job, error) {
	return s.createFn(ctx, posterID, input)
}

func (s *stubJobService) Get(ctx context.Context, id uint) (*domain.Job, error) {
	return s.getFn(ctx, id)
}

func (s *stubJobService) Update(ctx context.Context, id, actorID uint, input ports.UpdateJobInput) (*domain.Job, error) {
	return s.updateFn(ctx, id, actorID, input)
}

func (s *stubJobService) Delete(ctx context.Context, id, actorID uint) error {
	return s.deleteFn(ctx, id, actorID)
}

func (s *stubJobService) Search(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	return s.searchFn(ctx, filter)
}

func sampleJob(id, posterID uint) domain.Job {
	return domain.Job{
		ID:          id,
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Build APIs",
		PostedByID:  posterID,
		PostedBy:    domain.User{ID: posterID, FirstName: "Alice", OtherNames: "Smith"},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestJobHandler_List_Empty(t *testing.T) {
	e := newTestEcho()
	h := NewJobHandler(&stubJobService{
		listFn: func(ctx context.Context) ([]domain.Job, error) { return nil, nil },
	})

	c, rec := newJSONContext(e, http.MethodGet, "/jobs", "")
	_ = h.List(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Jobs not found!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestJobHandler_List(t *testing.T) {
	e := newTestEcho()
	h := NewJobHandler(&stubJobService{
		listFn: func(ctx context.Context) ([]domain.Job, error) {
			return []domain.Job{sampleJob(1, 7)}, nil
		},
	})

	c, rec := newJSONContext(e, http.MethodGet, "/jobs", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one job in data: %v", resp["data"])
	}
}

func TestJobHandler_Create(t *testing.T) {
	e := newTestEcho()
	h := NewJobHandler(&stubJobService{
		createFn: func(ctx context.Context, posterID uint, input ports.CreateJobInput) (*domain.Job, error) {
			if posterID != 7 {
				t.Fatalf("expected poster id 7, got %d", posterID)
			}
			job := sampleJob(1, posterID)
			job.Title = input.Title
			return &job, nil
		},
	})

	c, rec := newJSONContext(e, http.MethodPost, "/jobs",
		`{"title":"Backend Engineer","company":"Acme","location":"Remote","description":"Build APIs"}`)
	c.Set(userContextKey, &domain.User{ID: 7, FirstName: "Alice"})
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	data, _ := resp["data"].(map[string]any)
	poster, _ := data["posted_by"].(map[string]any)
	if poster["id"] != float64(7) {
		t.Fatalf("expected poster id 7 in payload: %v", data)
	}
}

func TestJobHandler_Create_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	h := NewJobHandler(&stubJobService{
		createFn: func(ctx context.Context, posterID uint, input ports.CreateJobInput) (*domain.Job, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	// title below the 3-char minimum and missing description
	c, rec := newJSONContext(e, http.MethodPost, "/jobs",
		`{"title":"ab","company":"Acme","location":"Remote"}`)
	c.Set(userContextKey, &domain.User{ID: 7})
	_ = h.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["errors"] == nil {
		t.Fatalf("expected errors list: %v", resp)
	}
}

func TestJobHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	h := NewJobHandler(&stubJobService{
		getFn: func(ctx context.Context, id uint) (*domain.Job, error) {
			return nil, domain.ErrJobNotFound
		},
	})

	c, rec := newJSONContext(e, http.MethodGet, "/jobs/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	_ = h.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Job not found!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestJobHandler_Update_NotPoster(t *testing.T) {
	e := newTestEcho()
	h := NewJobHandler(&stubJobService{
		updateFn: func(ctx context.Context, id, actorID uint, input ports.UpdateJobInput) (*domain.Job, error) {
			return nil, domain.ErrNotJobPoster
		},
	})

	c, rec := newJSONContext(e, http.MethodPut, "/jobs/1", `{"title":"Hijacked"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set(userContextKey, &domain.User{ID: 8})
	_ = h.Update(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "You are not authorized to update this job." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestJobHandler_Delete(t *testing.T) {
	e := newTestEcho()
	deleted := false
	h := NewJobHandler(&stubJobService{
		deleteFn: func(ctx context.Context, id, actorID uint) error {
			deleted = true
			if id != 1 || actorID != 7 {
				t.Fatalf("unexpected args: id=%d actor=%d", id, actorID)
			}
			return nil
		},
	})

	c, rec := newJSONContext(e, http.MethodDelete, "/jobs/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set(userContextKey, &domain.User{ID: 7})
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !deleted {
		t.Fatalf("service delete not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestJobHandler_Search(t *testing.T) {
	e := newTestEcho()
	var got ports.JobFilter
	h := NewJobHandler(&stubJobService{
		searchFn: func(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
			got = filter
			return []domain.Job{sampleJob(1, 7)}, nil
		},
	})

	c, rec := newJSONContext(e, http.MethodGet, "/search?title=engineer&location=remote", "")
	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got.Title != "engineer" || got.Location != "remote" || got.Company != "" {
		t.Fatalf("filter not passed through: %+v", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestJobHandler_Search_NoMatches(t *testing.T) {
	e := newTestEcho()
	h := NewJobHandler(&stubJobService{
		searchFn: func(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
			return nil, nil
		},
	})

	c, rec := newJSONContext(e, http.MethodGet, "/search?title=nothing", "")
	_ = h.Search(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "No jobs found matching search criteria." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}
