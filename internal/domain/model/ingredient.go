package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ingredient struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"nom"`
	Origin      *string   `gorm:"type:varchar(100);index" json:"origine"`
	Description *string   `gorm:"type:varchar(500)" json:"description"`
	Organic     bool      `gorm:"not null" json:"bio"`
	Allergen    bool      `gorm:"not null" json:"allergene"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
