package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Natoons/cynova/internal/domain/model"
	repo "github.com/Natoons/cynova/internal/repository"
	"github.com/Natoons/cynova/internal/usecase"
	"github.com/Natoons/cynova/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIngredientUC() (*usecase.IngredientUsecase, *IngredientRepoMock) {
	m := new(IngredientRepoMock)
	return usecase.NewIngredientUsecase(m, validator.New()), m
}

func TestIngredientUsecase_Create_DefaultsFlagsToFalse(t *testing.T) {
	uc, m := newIngredientUC()
	m.On("Create", mock.Anything, mock.MatchedBy(func(i *model.Ingredient) bool {
		return i.Name == "Aloe Vera" && !i.Organic && !i.Allergen
	})).Return(nil)

	i, err := uc.Create(context.Background(), usecase.CreateIngredientInput{Name: " Aloe Vera "})
	require.NoError(t, err)
	assert.False(t, i.Organic)
	assert.False(t, i.Allergen)
	assert.Nil(t, i.Origin)
	m.AssertExpectations(t)
}

func TestIngredientUsecase_Create_DuplicateName(t *testing.T) {
	uc, m := newIngredientUC()
	m.On("Create", mock.Anything, mock.Anything).Return(conflictErr("ingredient", "nom"))

	_, err := uc.Create(context.Background(), usecase.CreateIngredientInput{Name: "Aloe Vera", Organic: ptr(true)})
	requireHTTPError(t, err, http.StatusBadRequest, "ingredient with this nom already exists")
}

func TestIngredientUsecase_Create_Validation(t *testing.T) {
	uc, _ := newIngredientUC()

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	_, err := uc.Create(context.Background(), usecase.CreateIngredientInput{
		Name:        "",
		Description: ptr(string(long)),
	})
	he := requireHTTPError(t, err, http.StatusBadRequest, "validation failed")
	assert.ElementsMatch(t, []string{
		"nom is required",
		"description must not exceed 500 characters",
	}, he.Details)
}

func TestIngredientUsecase_ListOrganic(t *testing.T) {
	uc, m := newIngredientUC()

	organic := true
	q := repo.IngredientListQuery{Page: 1, Limit: 10, Organic: &organic}
	m.On("List", mock.Anything, q).Return([]model.Ingredient{
		{Name: "Miel", Organic: true},
		{Name: "Karité", Organic: true},
	}, int64(2), nil)

	out, err := uc.ListOrganic(context.Background(), usecase.PageInput{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, out.Ingredients, 2)
	assert.Equal(t, int64(1), out.Pagination.Pages)
	m.AssertExpectations(t)
}

func TestIngredientUsecase_List_FalseFlagFilters(t *testing.T) {
	uc, m := newIngredientUC()

	allergen := false
	q := repo.IngredientListQuery{Page: 1, Limit: 5, Allergen: &allergen}
	m.On("List", mock.Anything, q).Return([]model.Ingredient{}, int64(0), nil)

	out, err := uc.List(context.Background(), usecase.ListIngredientsInput{
		PageInput: usecase.PageInput{Page: 1, Limit: 5},
		Allergen:  &allergen,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Pagination.Pages)
	m.AssertExpectations(t)
}

func TestIngredientUsecase_ListByOrigin(t *testing.T) {
	ctx := context.Background()
	uc, m := newIngredientUC()

	_, err := uc.ListByOrigin(ctx, " ", usecase.PageInput{Page: 1, Limit: 10})
	requireHTTPError(t, err, http.StatusBadRequest, "missing origine")

	origin := "France"
	m.On("List", mock.Anything, repo.IngredientListQuery{Page: 1, Limit: 10, Origin: &origin}).
		Return([]model.Ingredient{{Name: "Miel", Origin: &origin}}, int64(1), nil)

	out, err := uc.ListByOrigin(ctx, "France", usecase.PageInput{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, out.Ingredients, 1)
}

func TestIngredientUsecase_Update_EmptyPayloadReturnsCurrent(t *testing.T) {
	uc, m := newIngredientUC()

	m.On("Update", mock.Anything, knownID, map[string]any{}).Return(nil)
	m.On("FindByID", mock.Anything, knownID).Return(model.Ingredient{ID: knownID, Name: "Miel"}, nil)

	i, err := uc.Update(context.Background(), knownID, usecase.UpdateIngredientInput{})
	require.NoError(t, err)
	assert.Equal(t, "Miel", i.Name)
	m.AssertExpectations(t)
}

func TestIngredientUsecase_Update_Flags(t *testing.T) {
	uc, m := newIngredientUC()

	m.On("Update", mock.Anything, knownID, map[string]any{"organic": false, "allergen": true}).Return(nil)
	m.On("FindByID", mock.Anything, knownID).Return(model.Ingredient{ID: knownID, Allergen: true}, nil)

	i, err := uc.Update(context.Background(), knownID, usecase.UpdateIngredientInput{
		Organic:  ptr(false),
		Allergen: ptr(true),
	})
	require.NoError(t, err)
	assert.True(t, i.Allergen)
	m.AssertExpectations(t)
}

func TestIngredientUsecase_NameTrimmedBeforeValidation(t *testing.T) {
	ctx := context.Background()
	uc, m := newIngredientUC()

	_, err := uc.Create(ctx, usecase.CreateIngredientInput{Name: " a "})
	he := requireHTTPError(t, err, http.StatusBadRequest, "validation failed")
	assert.Equal(t, []string{"nom must be at least 2 characters"}, he.Details)

	_, err = uc.Update(ctx, knownID, usecase.UpdateIngredientInput{Name: ptr(" a ")})
	requireHTTPError(t, err, http.StatusBadRequest, "validation failed")

	m.On("Update", mock.Anything, knownID, map[string]any{"name": "Miel"}).Return(nil)
	m.On("FindByID", mock.Anything, knownID).Return(model.Ingredient{ID: knownID, Name: "Miel"}, nil)
	_, err = uc.Update(ctx, knownID, usecase.UpdateIngredientInput{Name: ptr("  Miel ")})
	require.NoError(t, err)
	m.AssertExpectations(t)
}
