package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleApplicant     Role = "applicant"
	RoleAdministrator Role = "administrator"
)

func (r Role) Valid() bool {
	return r == RoleApplicant || r == RoleAdministrator
}

// User is a registered or federated identity. Federated users carry an empty
// password hash; the two provenances are never mixed on one record.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Role         Role      `gorm:"type:text;not null;default:'applicant'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Federated reports whether the user was created by a federated login.
func (u *User) Federated() bool { return u.PasswordHash == "" }
