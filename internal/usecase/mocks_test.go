package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Natoons/cynova/internal/domain/model"
	repo "github.com/Natoons/cynova/internal/repository"
	"github.com/Natoons/cynova/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type IngredientRepoMock struct{ mock.Mock }

func (m *IngredientRepoMock) List(ctx context.Context, q repo.IngredientListQuery) ([]model.Ingredient, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Ingredient)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *IngredientRepoMock) FindByID(ctx context.Context, id string) (model.Ingredient, error) {
	args := m.Called(ctx, id)
	i, _ := args.Get(0).(model.Ingredient)
	return i, args.Error(1)
}

func (m *IngredientRepoMock) Create(ctx context.Context, i *model.Ingredient) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *IngredientRepoMock) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *IngredientRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type BlogRepoMock struct{ mock.Mock }

func (m *BlogRepoMock) List(ctx context.Context, q repo.BlogListQuery) ([]model.Blog, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Blog)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *BlogRepoMock) FindByID(ctx context.Context, id string) (model.Blog, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Blog)
	return b, args.Error(1)
}

func (m *BlogRepoMock) Create(ctx context.Context, b *model.Blog) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BlogRepoMock) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *BlogRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) List(ctx context.Context, q repo.UserListQuery) ([]model.User, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.User)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepoMock) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type HasherMock struct{ mock.Mock }

func (m *HasherMock) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

var (
	_ repo.ProductRepository    = (*ProductRepoMock)(nil)
	_ repo.IngredientRepository = (*IngredientRepoMock)(nil)
	_ repo.BlogRepository       = (*BlogRepoMock)(nil)
	_ repo.UserRepository       = (*UserRepoMock)(nil)
)

// =====================
// helper
// =====================

const (
	knownID   = "6f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f"
	missingID = "00000000-0000-4000-8000-000000000000"
)

func requireHTTPError(t *testing.T, err error, status int, message string) *usecase.HTTPError {
	t.Helper()

	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected *HTTPError, got %T: %v", err, err)
	assert.Equal(t, status, he.Status)
	if message != "" {
		assert.Equal(t, message, he.Message)
	}
	return he
}

func notFoundErr(entity string) error {
	return &repo.StoreError{Kind: repo.KindNotFound, Entity: entity}
}

func conflictErr(entity, field string) error {
	return &repo.StoreError{Kind: repo.KindConflict, Entity: entity, Field: field, Err: errors.New("duplicated key")}
}

func ptr[T any](v T) *T { return &v }
