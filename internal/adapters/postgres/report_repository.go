package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
)

type ReportRepository interface {
	Summary(ctx context.Context, start, end time.Time, company string) (*domain.ReportSummary, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) Summary(ctx context.Context, start, end time.Time, company string) (*domain.ReportSummary, error) {
	summary := &domain.ReportSummary{}

	jobs := r.db.WithContext(ctx).
		Model(&domain.Job{}).
		Where("created_at BETWEEN ? AND ?", start, end)
	if company != "" {
		jobs = jobs.Where("company = ?", company)
	}
	if err := jobs.Count(&summary.TotalJobs).Error; err != nil {
		return nil, err
	}

	apps := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.applied_at BETWEEN ? AND ?", start, end)
	if company != "" {
		apps = apps.Where("jobs.company = ?", company)
	}
	var counts struct {
		Total    int64
		Accepted int64
		Rejected int64
		Pending  int64
	}
	err := apps.
		Select(`COUNT(*) AS total,
			SUM(CASE WHEN applications.status = 'accepted' THEN 1 ELSE 0 END) AS accepted,
			SUM(CASE WHEN applications.status = 'rejected' THEN 1 ELSE 0 END) AS rejected,
			SUM(CASE WHEN applications.status = 'pending' THEN 1 ELSE 0 END) AS pending`).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	summary.TotalApplications = counts.Total
	summary.Accepted = counts.Accepted
	summary.Rejected = counts.Rejected
	summary.Pending = counts.Pending

	details := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Select(`jobs.company AS company,
			users.name AS applicant_name,
			jobs.title AS job_title,
			applications.status AS status,
			applications.applied_at AS applied_at`).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("JOIN users ON users.id = applications.applicant_id").
		Where("applications.applied_at BETWEEN ? AND ?", start, end)
	if company != "" {
		details = details.Where("jobs.company = ?", company)
	}
	if err := details.Order("applications.applied_at DESC").Scan(&summary.Details).Error; err != nil {
		return nil, err
	}
	return summary, nil
}
