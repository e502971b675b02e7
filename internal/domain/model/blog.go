package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogCategory string

const (
	BlogCategoryConseils    BlogCategory = "conseils"
	BlogCategoryIngredients BlogCategory = "ingredients"
	BlogCategoryRoutines    BlogCategory = "routines"
	BlogCategoryActualites  BlogCategory = "actualites"
	BlogCategoryTutoriels   BlogCategory = "tutoriels"
)

const BlogCategories = "conseils ingredients routines actualites tutoriels"

// 著者未指定のときの既定値
const DefaultBlogAuthor = "Équipe Cynova"

func (c BlogCategory) Valid() bool {
	switch c {
	case BlogCategoryConseils, BlogCategoryIngredients, BlogCategoryRoutines,
		BlogCategoryActualites, BlogCategoryTutoriels:
		return true
	}
	return false
}

type Blog struct {
	ID         string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title      string       `gorm:"type:varchar(200);not null" json:"titre"`
	Content    string       `gorm:"type:text;not null" json:"contenu"`
	Category   BlogCategory `gorm:"type:varchar(20);not null;index" json:"categorie"`
	Author     string       `gorm:"type:varchar(100);not null" json:"auteur"`
	ProductIDs StringList   `gorm:"column:product_ids;type:text;not null" json:"produitIds"`
	Tags       StringList   `gorm:"type:text;not null" json:"tags"`
	Published  bool         `gorm:"not null;index" json:"publie"`
	CreatedAt  time.Time    `gorm:"not null;autoCreateTime;index" json:"createdAt"`
	UpdatedAt  time.Time    `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
