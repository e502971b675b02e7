package repository

import (
	"context"

	"github.com/Natoons/cynova/internal/domain/model"
	repo "github.com/Natoons/cynova/internal/repository"

	"gorm.io/gorm"
)

type IngredientGormRepository struct {
	crud crudGorm[model.Ingredient]
}

// DI
func NewIngredientGormRepository(db *gorm.DB) *IngredientGormRepository {
	return &IngredientGormRepository{crud: crudGorm[model.Ingredient]{db: db, entity: "ingredient", uniqueField: "nom"}}
}

var _ repo.IngredientRepository = (*IngredientGormRepository)(nil)

func (r *IngredientGormRepository) List(ctx context.Context, q repo.IngredientListQuery) ([]model.Ingredient, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		tx = matchEither("name", "description", q.Q)(tx)

		if q.Origin != nil {
			tx = tx.Where("origin = ?", *q.Origin)
		}
		if q.Organic != nil {
			tx = tx.Where("organic = ?", *q.Organic)
		}
		if q.Allergen != nil {
			tx = tx.Where("allergen = ?", *q.Allergen)
		}
		return tx
	}

	return r.crud.list(ctx, filter, "name asc, id asc", q.Page, q.Limit)
}

func (r *IngredientGormRepository) FindByID(ctx context.Context, id string) (model.Ingredient, error) {
	return r.crud.findByID(ctx, id)
}

func (r *IngredientGormRepository) Create(ctx context.Context, i *model.Ingredient) error {
	return r.crud.create(ctx, i)
}

func (r *IngredientGormRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.crud.update(ctx, id, fields)
}

func (r *IngredientGormRepository) Delete(ctx context.Context, id string) error {
	return r.crud.delete(ctx, id)
}
