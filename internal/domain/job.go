package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Job struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string     `gorm:"not null;index" json:"title"`
	Company      string     `gorm:"not null" json:"company"`
	Location     string     `gorm:"index" json:"location"`
	Description  string     `gorm:"type:text" json:"description"`
	Compensation string     `json:"compensation,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	// PostedBy references the administrator who created the posting.
	PostedBy  string    `gorm:"type:uuid;index" json:"posted_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Job) TableName() string { return "jobs" }

func (j *Job) BeforeCreate(*gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
