package repository

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// 4リソース共通の単一テーブル操作
type crudGorm[T any] struct {
	db          *gorm.DB
	entity      string
	uniqueField string
}

func (r *crudGorm[T]) findByID(ctx context.Context, id string) (T, error) {
	var v T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		var zero T
		return zero, toStoreError(r.entity, r.uniqueField, err)
	}
	return v, nil
}

func (r *crudGorm[T]) create(ctx context.Context, v *T) error {
	return toStoreError(r.entity, r.uniqueField, r.db.WithContext(ctx).Create(v).Error)
}

// 指定カラムだけ更新（updated_atはgormが付ける）
func (r *crudGorm[T]) update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		_, err := r.findByID(ctx, id)
		return err
	}

	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return toStoreError(r.entity, r.uniqueField, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(r.entity)
	}
	return nil
}

func (r *crudGorm[T]) delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return toStoreError(r.entity, r.uniqueField, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(r.entity)
	}
	return nil
}

// limit<=0なら全件。ページ取得と件数は並行に実行する。
func (r *crudGorm[T]) list(ctx context.Context, filter func(*gorm.DB) *gorm.DB, order string, page, limit int) ([]T, int64, error) {
	query := func(ctx context.Context) *gorm.DB {
		return r.db.WithContext(ctx).Model(new(T)).Scopes(filter)
	}

	items := make([]T, 0)
	if limit <= 0 {
		if err := query(ctx).Order(order).Find(&items).Error; err != nil {
			return nil, 0, toStoreError(r.entity, r.uniqueField, err)
		}
		return items, int64(len(items)), nil
	}

	if page < 1 {
		page = 1
	}

	var total int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return query(gctx).Count(&total).Error
	})
	g.Go(func() error {
		return query(gctx).Order(order).Offset((page - 1) * limit).Limit(limit).Find(&items).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, toStoreError(r.entity, r.uniqueField, err)
	}
	return items, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// 部分一致パターン（ワイルドカードはエスケープ）
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

// 2カラムのどちらかに部分一致
func matchEither(colA, colB, q string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if q == "" {
			return tx
		}
		like := containsPattern(q)
		return tx.Where("("+colA+` LIKE ? ESCAPE '\' OR `+colB+` LIKE ? ESCAPE '\')`, like, like)
	}
}
