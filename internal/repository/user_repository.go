package repository

import (
	"context"

	"github.com/Natoons/cynova/internal/domain/model"
)

type UserListQuery struct {
	Page       int
	Limit      int
	Q          string
	Role       *model.Role
	Newsletter *bool
}

// 保存・取得を約束
type UserRepository interface {
	List(ctx context.Context, q UserListQuery) ([]model.User, int64, error)
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, id string) (model.User, error)
	//メールからユーザーを一件取得する。見つからなければErrNotFound
	FindByEmail(ctx context.Context, email string) (model.User, error)

	//新規ユーザー作成
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
