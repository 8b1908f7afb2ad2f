package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	repo "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/postgres"
	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
	pkglog "github.com/kanyangaboRichard/Job-Board-System/pkg/log"
)

type JobInput struct {
	Title        string
	Company      string
	Location     string
	Description  string
	Compensation string
	Deadline     *time.Time
}

type JobService interface {
	List(ctx context.Context, title, location string) ([]domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, traceID string, in JobInput, postedBy string) (*domain.Job, error)
	Update(ctx context.Context, traceID, id string, in JobInput) (*domain.Job, error)
	Delete(ctx context.Context, traceID, id string) error
}

type jobService struct {
	logger pkglog.Logger
	jobs   repo.JobRepository
}

func NewJobService(logger pkglog.Logger, jobs repo.JobRepository) JobService {
	return &jobService{logger: logger, jobs: jobs}
}

func (s *jobService) List(ctx context.Context, title, location string) ([]domain.Job, error) {
	return s.jobs.List(ctx, strings.TrimSpace(title), strings.TrimSpace(location))
}

func (s *jobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *jobService) Create(ctx context.Context, traceID string, in JobInput, postedBy string) (*domain.Job, error) {
	if err := validateJobInput(in); err != nil {
		return nil, err
	}
	job := &domain.Job{
		Title:        strings.TrimSpace(in.Title),
		Company:      strings.TrimSpace(in.Company),
		Location:     strings.TrimSpace(in.Location),
		Description:  in.Description,
		Compensation: in.Compensation,
		Deadline:     in.Deadline,
		PostedBy:     postedBy,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info().Str("trace_id", traceID).Str("job_id", job.ID).Msg("job created")
	return job, nil
}

func (s *jobService) Update(ctx context.Context, traceID, id string, in JobInput) (*domain.Job, error) {
	if err := validateJobInput(in); err != nil {
		return nil, err
	}
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	job.Title = strings.TrimSpace(in.Title)
	job.Company = strings.TrimSpace(in.Company)
	job.Location = strings.TrimSpace(in.Location)
	job.Description = in.Description
	job.Compensation = in.Compensation
	job.Deadline = in.Deadline
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info().Str("trace_id", traceID).Str("job_id", job.ID).Msg("job updated")
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, traceID, id string) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("trace_id", traceID).Str("job_id", id).Msg("job deleted")
	return nil
}

func validateJobInput(in JobInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Company) == "" {
		return fmt.Errorf("%w: company is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	return nil
}
