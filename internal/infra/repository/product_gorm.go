package repository

import (
	"context"

	"github.com/Natoons/cynova/internal/domain/model"
	repo "github.com/Natoons/cynova/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	crud crudGorm[model.Product]
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{crud: crudGorm[model.Product]{db: db, entity: "product"}}
}

var _ repo.ProductRepository = (*ProductGormRepository)(nil)

// 検索/カテゴリ/公開状態/価格帯/ページング付きで返す。並びは名前順。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		tx = matchEither("name", "description", q.Q)(tx)

		if q.Category != nil {
			tx = tx.Where("category = ?", *q.Category)
		}
		if q.Active != nil {
			tx = tx.Where("active = ?", *q.Active)
		}

		//価格帯（両端を含む）
		if q.MinPrice != nil {
			tx = tx.Where("price >= ?", *q.MinPrice)
		}
		if q.MaxPrice != nil {
			tx = tx.Where("price <= ?", *q.MaxPrice)
		}
		return tx
	}

	return r.crud.list(ctx, filter, "name asc, id asc", q.Page, q.Limit)
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	return r.crud.findByID(ctx, id)
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p *model.Product) error {
	return r.crud.create(ctx, p)
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.crud.update(ctx, id, fields)
}

// 商品削除
func (r *ProductGormRepository) Delete(ctx context.Context, id string) error {
	return r.crud.delete(ctx, id)
}
