package repository

import (
	"context"

	"github.com/Natoons/cynova/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Limitが0なら全件（/search用）
type ProductListQuery struct {
	Page     int
	Limit    int
	Q        string
	Category *model.ProductCategory
	Active   *bool
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	Create(ctx context.Context, p *model.Product) error
	// fieldsはカラム名→値。指定されたカラムだけ更新する。
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
