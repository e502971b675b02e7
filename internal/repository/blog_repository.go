package repository

import (
	"context"

	"github.com/Natoons/cynova/internal/domain/model"
)

type BlogListQuery struct {
	Page      int
	Limit     int
	Q         string
	Category  *model.BlogCategory
	Published *bool
	Author    *string
}

// ブログ記事の保存・取得
type BlogRepository interface {
	List(ctx context.Context, q BlogListQuery) ([]model.Blog, int64, error)
	FindByID(ctx context.Context, id string) (model.Blog, error)

	Create(ctx context.Context, b *model.Blog) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
