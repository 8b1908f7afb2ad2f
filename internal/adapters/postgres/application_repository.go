package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	// DecideIfPending moves a pending application into a terminal status.
	// It returns ErrApplicationNotFound when the row does not exist and
	// ErrInvalidOperation when the row exists but is no longer pending.
	DecideIfPending(ctx context.Context, id string, status domain.ApplicationStatus, note string) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.ApplicationWithApplicant, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
	ListAll(ctx context.Context) ([]domain.ApplicationWithApplicant, error)
}

type applicationRepo struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) ApplicationRepository { return &applicationRepo{db: db} }

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The composite unique index on (job_id, applicant_id) is the
		// authority on the one-application-per-job invariant.
		return domain.ErrDuplicateApplication
	}
	return err
}

func (r *applicationRepo) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	var app domain.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	var app domain.Application
	if err := r.db.WithContext(ctx).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) DecideIfPending(ctx context.Context, id string, status domain.ApplicationStatus, note string) (*domain.Application, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("id = ? AND status = ?", id, domain.StatusPending).
		Updates(map[string]interface{}{"status": status, "response_note": note, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidOperation
	}
	return r.FindByID(ctx, id)
}

const applicantJoin = "JOIN users ON users.id = applications.applicant_id"

func (r *applicationRepo) ListByJob(ctx context.Context, jobID string) ([]domain.ApplicationWithApplicant, error) {
	var items []domain.ApplicationWithApplicant
	err := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Select("applications.*, users.email AS applicant_email, users.name AS applicant_name").
		Joins(applicantJoin).
		Where("applications.job_id = ?", jobID).
		Order("applications.applied_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *applicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	var items []domain.Application
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *applicationRepo) ListAll(ctx context.Context) ([]domain.ApplicationWithApplicant, error) {
	var items []domain.ApplicationWithApplicant
	err := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Select("applications.*, users.email AS applicant_email, users.name AS applicant_name").
		Joins(applicantJoin).
		Order("applications.applied_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
