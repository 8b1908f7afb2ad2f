package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// Terminal reports whether no further transition is defined from s.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Application is a single applicant's submission against a single job. The
// composite unique index enforces at most one application per (job, applicant)
// pair; the database is the authority, the service-level existence check is
// only a fast path.
type Application struct {
	ID           string            `gorm:"type:uuid;primaryKey" json:"id"`
	JobID        string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	ApplicantID  string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	CoverLetter  string            `gorm:"type:text;not null" json:"cover_letter"`
	CVURL        string            `gorm:"column:cv_url;not null" json:"cv_url"`
	Status       ApplicationStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	ResponseNote string            `gorm:"type:text" json:"response_note,omitempty"`
	AppliedAt    time.Time         `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }

func (a *Application) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ApplicationWithApplicant is the admin-facing projection joining applicant
// contact details onto the application row.
type ApplicationWithApplicant struct {
	Application
	ApplicantEmail string `json:"applicant_email"`
	ApplicantName  string `json:"applicant_name"`
}

// StatusNotification carries everything the notification side channel needs
// about a decided application.
type StatusNotification struct {
	RecipientEmail string
	ApplicantName  string
	JobTitle       string
	Status         ApplicationStatus
	ResponseNote   string
}
