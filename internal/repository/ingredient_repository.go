package repository

import (
	"context"

	"github.com/Natoons/cynova/internal/domain/model"
)

type IngredientListQuery struct {
	Page     int
	Limit    int
	Q        string
	Origin   *string
	Organic  *bool
	Allergen *bool
}

// 成分の保存・取得
type IngredientRepository interface {
	List(ctx context.Context, q IngredientListQuery) ([]model.Ingredient, int64, error)
	FindByID(ctx context.Context, id string) (model.Ingredient, error)

	Create(ctx context.Context, i *model.Ingredient) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
