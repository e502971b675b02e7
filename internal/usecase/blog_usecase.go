package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/Natoons/cynova/internal/domain/model"
	repo "github.com/Natoons/cynova/internal/repository"
)

type BlogUsecase struct {
	blogRepo  repo.BlogRepository
	validator Validator
}

// DI
func NewBlogUsecase(blogRepo repo.BlogRepository, validator Validator) *BlogUsecase {
	return &BlogUsecase{
		blogRepo:  blogRepo,
		validator: validator,
	}
}

type ListBlogsInput struct {
	PageInput
	Q         string
	Category  string
	Published *bool
	Author    string
}

type BlogListOutput struct {
	Blogs      []model.Blog `json:"blogs"`
	Pagination Pagination   `json:"pagination"`
}

type BlogSearchOutput struct {
	Blogs []model.Blog `json:"blogs"`
	Count int          `json:"count"`
}

type CreateBlogInput struct {
	Title      string           `json:"titre" validate:"required,min=5,max=200"`
	Content    string           `json:"contenu" validate:"required,min=50,max=20000"`
	Category   string           `json:"categorie" validate:"required,oneof=conseils ingredients routines actualites tutoriels"`
	Author     *string          `json:"auteur" validate:"omitempty,min=2,max=100"`
	ProductIDs model.StringList `json:"produitIds" validate:"omitempty,dive,required,max=64"`
	Tags       model.StringList `json:"tags" validate:"omitempty,dive,required,max=50"`
	Published  *bool            `json:"publie"`
}

type UpdateBlogInput struct {
	Title      *string           `json:"titre" validate:"omitempty,min=5,max=200"`
	Content    *string           `json:"contenu" validate:"omitempty,min=50,max=20000"`
	Category   *string           `json:"categorie" validate:"omitempty,oneof=conseils ingredients routines actualites tutoriels"`
	Author     *string           `json:"auteur" validate:"omitempty,min=2,max=100"`
	ProductIDs *model.StringList `json:"produitIds" validate:"omitempty,dive,required,max=64"`
	Tags       *model.StringList `json:"tags" validate:"omitempty,dive,required,max=50"`
	Published  *bool             `json:"publie"`
}

// 記事一覧（新しい順）
func (u *BlogUsecase) List(ctx context.Context, in ListBlogsInput) (BlogListOutput, error) {
	if err := in.PageInput.validate(); err != nil {
		return BlogListOutput{}, err
	}
	q, err := normalizeListQuery(in.Q)
	if err != nil {
		return BlogListOutput{}, err
	}

	query := repo.BlogListQuery{
		Page:      in.Page,
		Limit:     in.Limit,
		Q:         q,
		Published: in.Published,
	}
	if in.Category != "" {
		c := model.BlogCategory(in.Category)
		if !c.Valid() {
			return BlogListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid categorie")
		}
		query.Category = &c
	}
	if author := strings.TrimSpace(in.Author); author != "" {
		query.Author = &author
	}

	items, total, err := u.blogRepo.List(ctx, query)
	if err != nil {
		return BlogListOutput{}, FromStoreError(err)
	}

	return BlogListOutput{
		Blogs:      items,
		Pagination: NewPagination(in.Page, in.Limit, total),
	}, nil
}

func (u *BlogUsecase) ListByCategory(ctx context.Context, category string, page PageInput) (BlogListOutput, error) {
	if strings.TrimSpace(category) == "" {
		return BlogListOutput{}, NewHTTPError(http.StatusBadRequest, "missing categorie")
	}
	return u.List(ctx, ListBlogsInput{PageInput: page, Category: category})
}

func (u *BlogUsecase) Search(ctx context.Context, q string) (BlogSearchOutput, error) {
	q, err := normalizeSearchQuery(q)
	if err != nil {
		return BlogSearchOutput{}, err
	}

	items, _, err := u.blogRepo.List(ctx, repo.BlogListQuery{Q: q})
	if err != nil {
		return BlogSearchOutput{}, FromStoreError(err)
	}
	return BlogSearchOutput{Blogs: items, Count: len(items)}, nil
}

func (u *BlogUsecase) Get(ctx context.Context, id string) (model.Blog, error) {
	if err := checkID(id, "blog"); err != nil {
		return model.Blog{}, err
	}

	b, err := u.blogRepo.FindByID(ctx, id)
	if err != nil {
		return model.Blog{}, FromStoreError(err)
	}
	return b, nil
}

// 記事の作成。auteur未指定なら既定の著者
func (u *BlogUsecase) Create(ctx context.Context, in CreateBlogInput) (model.Blog, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = trimPtr(in.Author)
	if err := u.validator.Validate(in); err != nil {
		return model.Blog{}, err
	}

	b := model.Blog{
		Title:      in.Title,
		Content:    in.Content,
		Category:   model.BlogCategory(in.Category),
		Author:     model.DefaultBlogAuthor,
		ProductIDs: in.ProductIDs.Normalize(),
		Tags:       in.Tags.Normalize(),
	}
	if in.Author != nil && *in.Author != "" {
		b.Author = *in.Author
	}
	if in.Published != nil {
		b.Published = *in.Published
	}

	if err := u.blogRepo.Create(ctx, &b); err != nil {
		return model.Blog{}, FromStoreError(err)
	}
	return b, nil
}

func (u *BlogUsecase) Update(ctx context.Context, id string, in UpdateBlogInput) (model.Blog, error) {
	if err := checkID(id, "blog"); err != nil {
		return model.Blog{}, err
	}
	in.Title = trimPtr(in.Title)
	in.Author = trimPtr(in.Author)
	if err := u.validator.Validate(in); err != nil {
		return model.Blog{}, err
	}

	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.Category != nil {
		fields["category"] = model.BlogCategory(*in.Category)
	}
	if in.Author != nil {
		// 空白だけなら既定の著者に戻す
		author := *in.Author
		if author == "" {
			author = model.DefaultBlogAuthor
		}
		fields["author"] = author
	}
	if in.ProductIDs != nil {
		fields["product_ids"] = in.ProductIDs.Normalize()
	}
	if in.Tags != nil {
		fields["tags"] = in.Tags.Normalize()
	}
	if in.Published != nil {
		fields["published"] = *in.Published
	}

	if err := u.blogRepo.Update(ctx, id, fields); err != nil {
		return model.Blog{}, FromStoreError(err)
	}

	b, err := u.blogRepo.FindByID(ctx, id)
	if err != nil {
		return model.Blog{}, FromStoreError(err)
	}
	return b, nil
}

func (u *BlogUsecase) Delete(ctx context.Context, id string) error {
	if err := checkID(id, "blog"); err != nil {
		return err
	}
	if err := u.blogRepo.Delete(ctx, id); err != nil {
		return FromStoreError(err)
	}
	return nil
}
