package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// prixはJSONでは数値として返す
	decimal.MarshalJSONWithoutQuotes = true
}

type ProductCategory string

const (
	ProductCategorySavon     ProductCategory = "savon"
	ProductCategoryShampoing ProductCategory = "shampoing"
	ProductCategoryCreme     ProductCategory = "creme"
	ProductCategoryHuile     ProductCategory = "huile"
	ProductCategoryBaume     ProductCategory = "baume"
	ProductCategorySerum     ProductCategory = "serum"
	ProductCategoryMasque    ProductCategory = "masque"
	ProductCategoryDeodorant ProductCategory = "deodorant"
)

// validatorのoneofと揃える
const ProductCategories = "savon shampoing creme huile baume serum masque deodorant"

func (c ProductCategory) Valid() bool {
	switch c {
	case ProductCategorySavon, ProductCategoryShampoing, ProductCategoryCreme, ProductCategoryHuile,
		ProductCategoryBaume, ProductCategorySerum, ProductCategoryMasque, ProductCategoryDeodorant:
		return true
	}
	return false
}

type Product struct {
	ID            string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(100);not null;index" json:"nom"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"prix"`
	Category      ProductCategory `gorm:"type:varchar(20);not null;index" json:"categorie"`
	Stock         int             `gorm:"not null" json:"stock"`
	YukaScore     *int            `json:"yukaScore"`
	Provenance    *string         `gorm:"type:varchar(100)" json:"provenance"`
	IngredientIDs StringList      `gorm:"column:ingredient_ids;type:text;not null" json:"ingredientIds"`
	BenefitIDs    StringList      `gorm:"column:benefit_ids;type:text;not null" json:"bienfaitIds"`
	QuantityIDs   StringList      `gorm:"column:quantity_ids;type:text;not null" json:"quantiteIds"`
	BlogIDs       StringList      `gorm:"column:blog_ids;type:text;not null" json:"blogIds"`
	Active        bool            `gorm:"not null" json:"actif"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// IDが空ならUUIDを採番
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
