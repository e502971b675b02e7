package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/Natoons/cynova/internal/domain/model"
	repo "github.com/Natoons/cynova/internal/repository"
	"github.com/Natoons/cynova/internal/usecase"
	"github.com/Natoons/cynova/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBlogUC() (*usecase.BlogUsecase, *BlogRepoMock) {
	m := new(BlogRepoMock)
	return usecase.NewBlogUsecase(m, validator.New()), m
}

func validBlogInput() usecase.CreateBlogInput {
	return usecase.CreateBlogInput{
		Title:    "Routine du soir",
		Content:  strings.Repeat("Une routine simple pour la peau. ", 3),
		Category: "routines",
	}
}

func TestBlogUsecase_Create_Defaults(t *testing.T) {
	uc, m := newBlogUC()
	m.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := uc.Create(context.Background(), validBlogInput())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultBlogAuthor, b.Author)
	assert.False(t, b.Published)
	assert.Equal(t, "[]", b.Tags.Encode())
	assert.Equal(t, "[]", b.ProductIDs.Encode())
	m.AssertExpectations(t)
}

func TestBlogUsecase_Create_Validation(t *testing.T) {
	uc, m := newBlogUC()

	in := validBlogInput()
	in.Content = "trop court"
	in.Tags = model.StringList{"ok", strings.Repeat("x", 51)}

	_, err := uc.Create(context.Background(), in)
	he := requireHTTPError(t, err, http.StatusBadRequest, "validation failed")
	assert.ElementsMatch(t, []string{
		"contenu must be at least 50 characters",
		"tags[1] must not exceed 50 characters",
	}, he.Details)
	m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBlogUsecase_List_Filters(t *testing.T) {
	uc, m := newBlogUC()

	cat := model.BlogCategoryConseils
	published := false
	author := "Alice"
	q := repo.BlogListQuery{Page: 1, Limit: 10, Category: &cat, Published: &published, Author: &author}
	m.On("List", mock.Anything, q).Return([]model.Blog{}, int64(0), nil)

	out, err := uc.List(context.Background(), usecase.ListBlogsInput{
		PageInput: usecase.PageInput{Page: 1, Limit: 10},
		Category:  "conseils",
		Published: &published,
		Author:    "Alice",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Blogs)
	m.AssertExpectations(t)
}

func TestBlogUsecase_ListByCategory_Invalid(t *testing.T) {
	uc, _ := newBlogUC()

	_, err := uc.ListByCategory(context.Background(), "recettes", usecase.PageInput{Page: 1, Limit: 10})
	requireHTTPError(t, err, http.StatusBadRequest, "invalid categorie")
}

func TestBlogUsecase_Update_Publish(t *testing.T) {
	uc, m := newBlogUC()

	m.On("Update", mock.Anything, knownID, map[string]any{"published": true, "tags": model.StringList{"peau"}}).Return(nil)
	m.On("FindByID", mock.Anything, knownID).Return(model.Blog{ID: knownID, Published: true}, nil)

	b, err := uc.Update(context.Background(), knownID, usecase.UpdateBlogInput{
		Published: ptr(true),
		Tags:      &model.StringList{"peau"},
	})
	require.NoError(t, err)
	assert.True(t, b.Published)
	m.AssertExpectations(t)
}

func TestBlogUsecase_Get_NotFound(t *testing.T) {
	uc, m := newBlogUC()
	m.On("FindByID", mock.Anything, missingID).Return(model.Blog{}, notFoundErr("blog"))

	_, err := uc.Get(context.Background(), missingID)
	requireHTTPError(t, err, http.StatusNotFound, "blog not found")
}

func TestBlogUsecase_Create_TitleTrimmedBeforeValidation(t *testing.T) {
	uc, m := newBlogUC()

	in := validBlogInput()
	in.Title = "   Soin   "
	in.Author = ptr("  A ")
	_, err := uc.Create(context.Background(), in)
	he := requireHTTPError(t, err, http.StatusBadRequest, "validation failed")
	assert.ElementsMatch(t, []string{
		"titre must be at least 5 characters",
		"auteur must be at least 2 characters",
	}, he.Details)
	m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBlogUsecase_BlankAuthorFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	uc, m := newBlogUC()
	m.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Blog) bool {
		return b.Author == model.DefaultBlogAuthor
	})).Return(nil)
	m.On("Update", mock.Anything, knownID, map[string]any{"author": model.DefaultBlogAuthor}).Return(nil)
	m.On("FindByID", mock.Anything, knownID).Return(model.Blog{ID: knownID, Author: model.DefaultBlogAuthor}, nil)

	in := validBlogInput()
	in.Author = ptr("   ")
	b, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultBlogAuthor, b.Author)

	_, err = uc.Update(ctx, knownID, usecase.UpdateBlogInput{Author: ptr("  ")})
	require.NoError(t, err)
	m.AssertExpectations(t)
}
