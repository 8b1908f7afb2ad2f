package usecase

import (
	"context"
	"fmt"
	"time"

	repo "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/postgres"
	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
)

type ReportService interface {
	Summary(ctx context.Context, start, end time.Time, company string) (*domain.ReportSummary, error)
}

type reportService struct {
	reports repo.ReportRepository
}

func NewReportService(reports repo.ReportRepository) ReportService {
	return &reportService{reports: reports}
}

func (s *reportService) Summary(ctx context.Context, start, end time.Time, company string) (*domain.ReportSummary, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", domain.ErrValidation)
	}
	return s.reports.Summary(ctx, start, end, company)
}
