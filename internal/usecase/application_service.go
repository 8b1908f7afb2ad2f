package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	repo "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/postgres"
	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
	pkglog "github.com/kanyangaboRichard/Job-Board-System/pkg/log"
)

// Notifier is the outbound side channel informing an applicant of a status
// change. Implementations must be safe for concurrent use.
type Notifier interface {
	StatusChanged(ctx context.Context, n domain.StatusNotification) error
}

// EventPublisher announces lifecycle events to sibling services. Best-effort;
// callers ignore the returned error.
type EventPublisher interface {
	ApplicationStatusChanged(ctx context.Context, applicationID string, status domain.ApplicationStatus) error
}

type ApplicationService interface {
	Apply(ctx context.Context, traceID, jobID, applicantID, coverLetter, cvURL string) (*domain.Application, error)
	Decide(ctx context.Context, traceID, applicationID string, status domain.ApplicationStatus, note string) (*domain.Application, error)
	ListForJob(ctx context.Context, jobID string) ([]domain.ApplicationWithApplicant, error)
	ListForApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
	ListAll(ctx context.Context) ([]domain.ApplicationWithApplicant, error)
}

type applicationService struct {
	logger       pkglog.Logger
	applications repo.ApplicationRepository
	jobs         repo.JobRepository
	users        repo.UserRepository
	notifier     Notifier
	events       EventPublisher
	dispatchWait time.Duration
}

func NewApplicationService(logger pkglog.Logger, applications repo.ApplicationRepository, jobs repo.JobRepository, users repo.UserRepository, notifier Notifier, events EventPublisher) ApplicationService {
	return &applicationService{
		logger:       logger,
		applications: applications,
		jobs:         jobs,
		users:        users,
		notifier:     notifier,
		events:       events,
		dispatchWait: 15 * time.Second,
	}
}

func (s *applicationService) Apply(ctx context.Context, traceID, jobID, applicantID, coverLetter, cvURL string) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Deadline != nil && time.Now().UTC().After(*job.Deadline) {
		return nil, fmt.Errorf("%w: application deadline has passed", domain.ErrValidation)
	}
	if strings.TrimSpace(coverLetter) == "" {
		return nil, fmt.Errorf("%w: cover letter is required", domain.ErrValidation)
	}
	if err := validateCVURL(cvURL); err != nil {
		return nil, err
	}

	// Fast path; the unique index on (job_id, applicant_id) remains the
	// authority under concurrent applies.
	if _, err := s.applications.FindByJobAndApplicant(ctx, jobID, applicantID); err == nil {
		return nil, domain.ErrDuplicateApplication
	} else if !errors.Is(err, domain.ErrApplicationNotFound) {
		return nil, err
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: coverLetter,
		CVURL:       cvURL,
		Status:      domain.StatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	s.logger.Info().Str("trace_id", traceID).Str("application_id", app.ID).Str("job_id", jobID).Msg("application submitted")
	return app, nil
}

func (s *applicationService) Decide(ctx context.Context, traceID, applicationID string, status domain.ApplicationStatus, note string) (*domain.Application, error) {
	if !status.Terminal() {
		return nil, domain.ErrInvalidStatus
	}
	if status == domain.StatusRejected && strings.TrimSpace(note) == "" {
		return nil, domain.ErrMissingReason
	}

	app, err := s.applications.DecideIfPending(ctx, applicationID, status, note)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("trace_id", traceID).Str("application_id", app.ID).Str("status", string(status)).Msg("application decided")

	// The status update is durable at this point. Notification is fired
	// without the caller blocking on, or ever seeing, its outcome.
	go s.dispatchStatusChanged(traceID, app)

	return app, nil
}

func (s *applicationService) dispatchStatusChanged(traceID string, app *domain.Application) {
	ctx, cancel := context.WithTimeout(context.Background(), s.dispatchWait)
	defer cancel()

	if s.events != nil {
		_ = s.events.ApplicationStatusChanged(ctx, app.ID, app.Status)
	}
	if s.notifier == nil {
		return
	}

	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		s.logger.Error().Err(err).Str("trace_id", traceID).Str("application_id", app.ID).Msg("notification skipped: job lookup failed")
		return
	}
	applicant, err := s.users.FindByID(ctx, app.ApplicantID)
	if err != nil {
		s.logger.Error().Err(err).Str("trace_id", traceID).Str("application_id", app.ID).Msg("notification skipped: applicant lookup failed")
		return
	}

	n := domain.StatusNotification{
		RecipientEmail: applicant.Email,
		ApplicantName:  applicant.Name,
		JobTitle:       job.Title,
		Status:         app.Status,
		ResponseNote:   app.ResponseNote,
	}
	if err := s.notifier.StatusChanged(ctx, n); err != nil {
		s.logger.Error().Err(err).Str("trace_id", traceID).Str("application_id", app.ID).Msg("status notification failed")
		return
	}
	s.logger.Info().Str("trace_id", traceID).Str("application_id", app.ID).Msg("status notification sent")
}

func (s *applicationService) ListForJob(ctx context.Context, jobID string) ([]domain.ApplicationWithApplicant, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.applications.ListByJob(ctx, jobID)
}

func (s *applicationService) ListForApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	return s.applications.ListByApplicant(ctx, applicantID)
}

func (s *applicationService) ListAll(ctx context.Context) ([]domain.ApplicationWithApplicant, error) {
	return s.applications.ListAll(ctx)
}

func validateCVURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: cv reference is required", domain.ErrValidation)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: cv reference must be an absolute URL", domain.ErrValidation)
	}
	return nil
}
