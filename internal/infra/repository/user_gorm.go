package repository

import (
	"context"

	"github.com/Natoons/cynova/internal/domain/model"
	repo "github.com/Natoons/cynova/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	crud crudGorm[model.User]
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) repo.UserRepository {
	return &userGormRepository{crud: crudGorm[model.User]{db: db, entity: "user", uniqueField: "email"}}
}

func (r *userGormRepository) List(ctx context.Context, q repo.UserListQuery) ([]model.User, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		tx = matchEither("email", "last_name", q.Q)(tx)

		if q.Role != nil {
			tx = tx.Where("role = ?", *q.Role)
		}
		if q.Newsletter != nil {
			tx = tx.Where("newsletter = ?", *q.Newsletter)
		}
		return tx
	}

	return r.crud.list(ctx, filter, "created_at desc, id desc", q.Page, q.Limit)
}

// IDでユーザーを1件取得
func (r *userGormRepository) FindByID(ctx context.Context, id string) (model.User, error) {
	return r.crud.findByID(ctx, id)
}

// emailでユーザーを1件取得
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User

	err := r.crud.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error
	if err != nil {
		return model.User{}, toStoreError(r.crud.entity, r.crud.uniqueField, err)
	}

	return u, nil
}

// Create はユーザーを新規作成
func (r *userGormRepository) Create(ctx context.Context, u *model.User) error {
	return r.crud.create(ctx, u)
}

// ユーザーを更新。
func (r *userGormRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.crud.update(ctx, id, fields)
}

func (r *userGormRepository) Delete(ctx context.Context, id string) error {
	return r.crud.delete(ctx, id)
}
