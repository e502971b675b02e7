package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

const Roles = "admin standard"

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStandard
}

// PasswordHashはJSONに出さない
type User struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	LastName     *string   `gorm:"type:varchar(50)" json:"nom"`
	FirstName    *string   `gorm:"type:varchar(50)" json:"prenom"`
	Address      *string   `gorm:"type:varchar(255)" json:"adresse"`
	Phone        *string   `gorm:"type:varchar(20)" json:"telephone"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	Newsletter   bool      `gorm:"not null" json:"newsletter"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime;index" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
