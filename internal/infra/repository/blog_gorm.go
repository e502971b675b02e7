package repository

import (
	"context"

	"github.com/Natoons/cynova/internal/domain/model"
	repo "github.com/Natoons/cynova/internal/repository"

	"gorm.io/gorm"
)

type BlogGormRepository struct {
	crud crudGorm[model.Blog]
}

// DI
func NewBlogGormRepository(db *gorm.DB) *BlogGormRepository {
	return &BlogGormRepository{crud: crudGorm[model.Blog]{db: db, entity: "blog"}}
}

var _ repo.BlogRepository = (*BlogGormRepository)(nil)

// 新しい記事から順に返す
func (r *BlogGormRepository) List(ctx context.Context, q repo.BlogListQuery) ([]model.Blog, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		tx = matchEither("title", "content", q.Q)(tx)

		if q.Category != nil {
			tx = tx.Where("category = ?", *q.Category)
		}
		if q.Published != nil {
			tx = tx.Where("published = ?", *q.Published)
		}
		if q.Author != nil {
			tx = tx.Where("author = ?", *q.Author)
		}
		return tx
	}

	return r.crud.list(ctx, filter, "created_at desc, id desc", q.Page, q.Limit)
}

func (r *BlogGormRepository) FindByID(ctx context.Context, id string) (model.Blog, error) {
	return r.crud.findByID(ctx, id)
}

func (r *BlogGormRepository) Create(ctx context.Context, b *model.Blog) error {
	return r.crud.create(ctx, b)
}

func (r *BlogGormRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.crud.update(ctx, id, fields)
}

func (r *BlogGormRepository) Delete(ctx context.Context, id string) error {
	return r.crud.delete(ctx, id)
}
