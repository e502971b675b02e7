package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/Natoons/cynova/internal/domain/model"
	repo "github.com/Natoons/cynova/internal/repository"
)

type IngredientUsecase struct {
	ingredientRepo repo.IngredientRepository
	validator      Validator
}

// DI
func NewIngredientUsecase(ingredientRepo repo.IngredientRepository, validator Validator) *IngredientUsecase {
	return &IngredientUsecase{
		ingredientRepo: ingredientRepo,
		validator:      validator,
	}
}

type ListIngredientsInput struct {
	PageInput
	Q        string
	Origin   string
	Organic  *bool
	Allergen *bool
}

type IngredientListOutput struct {
	Ingredients []model.Ingredient `json:"ingredients"`
	Pagination  Pagination         `json:"pagination"`
}

type IngredientSearchOutput struct {
	Ingredients []model.Ingredient `json:"ingredients"`
	Count       int                `json:"count"`
}

type CreateIngredientInput struct {
	Name        string  `json:"nom" validate:"required,min=2,max=100"`
	Origin      *string `json:"origine" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Organic     *bool   `json:"bio"`
	Allergen    *bool   `json:"allergene"`
}

type UpdateIngredientInput struct {
	Name        *string `json:"nom" validate:"omitempty,min=2,max=100"`
	Origin      *string `json:"origine" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Organic     *bool   `json:"bio"`
	Allergen    *bool   `json:"allergene"`
}

func (u *IngredientUsecase) List(ctx context.Context, in ListIngredientsInput) (IngredientListOutput, error) {
	if err := in.PageInput.validate(); err != nil {
		return IngredientListOutput{}, err
	}
	q, err := normalizeListQuery(in.Q)
	if err != nil {
		return IngredientListOutput{}, err
	}

	query := repo.IngredientListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Q:        q,
		Organic:  in.Organic,
		Allergen: in.Allergen,
	}
	if origin := strings.TrimSpace(in.Origin); origin != "" {
		query.Origin = &origin
	}

	items, total, err := u.ingredientRepo.List(ctx, query)
	if err != nil {
		return IngredientListOutput{}, FromStoreError(err)
	}

	return IngredientListOutput{
		Ingredients: items,
		Pagination:  NewPagination(in.Page, in.Limit, total),
	}, nil
}

// 有機（bio）成分だけの一覧
func (u *IngredientUsecase) ListOrganic(ctx context.Context, page PageInput) (IngredientListOutput, error) {
	organic := true
	return u.List(ctx, ListIngredientsInput{PageInput: page, Organic: &organic})
}

// 原産地別一覧
func (u *IngredientUsecase) ListByOrigin(ctx context.Context, origin string, page PageInput) (IngredientListOutput, error) {
	if strings.TrimSpace(origin) == "" {
		return IngredientListOutput{}, NewHTTPError(http.StatusBadRequest, "missing origine")
	}
	return u.List(ctx, ListIngredientsInput{PageInput: page, Origin: origin})
}

func (u *IngredientUsecase) Search(ctx context.Context, q string) (IngredientSearchOutput, error) {
	q, err := normalizeSearchQuery(q)
	if err != nil {
		return IngredientSearchOutput{}, err
	}

	items, _, err := u.ingredientRepo.List(ctx, repo.IngredientListQuery{Q: q})
	if err != nil {
		return IngredientSearchOutput{}, FromStoreError(err)
	}
	return IngredientSearchOutput{Ingredients: items, Count: len(items)}, nil
}

func (u *IngredientUsecase) Get(ctx context.Context, id string) (model.Ingredient, error) {
	if err := checkID(id, "ingredient"); err != nil {
		return model.Ingredient{}, err
	}

	i, err := u.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		return model.Ingredient{}, FromStoreError(err)
	}
	return i, nil
}

// 成分の作成（nomは一意）
func (u *IngredientUsecase) Create(ctx context.Context, in CreateIngredientInput) (model.Ingredient, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := u.validator.Validate(in); err != nil {
		return model.Ingredient{}, err
	}

	i := model.Ingredient{
		Name:        in.Name,
		Origin:      in.Origin,
		Description: in.Description,
	}
	if in.Organic != nil {
		i.Organic = *in.Organic
	}
	if in.Allergen != nil {
		i.Allergen = *in.Allergen
	}

	if err := u.ingredientRepo.Create(ctx, &i); err != nil {
		return model.Ingredient{}, FromStoreError(err)
	}
	return i, nil
}

func (u *IngredientUsecase) Update(ctx context.Context, id string, in UpdateIngredientInput) (model.Ingredient, error) {
	if err := checkID(id, "ingredient"); err != nil {
		return model.Ingredient{}, err
	}
	in.Name = trimPtr(in.Name)
	if err := u.validator.Validate(in); err != nil {
		return model.Ingredient{}, err
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Origin != nil {
		fields["origin"] = *in.Origin
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Organic != nil {
		fields["organic"] = *in.Organic
	}
	if in.Allergen != nil {
		fields["allergen"] = *in.Allergen
	}

	if err := u.ingredientRepo.Update(ctx, id, fields); err != nil {
		return model.Ingredient{}, FromStoreError(err)
	}

	i, err := u.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		return model.Ingredient{}, FromStoreError(err)
	}
	return i, nil
}

func (u *IngredientUsecase) Delete(ctx context.Context, id string) error {
	if err := checkID(id, "ingredient"); err != nil {
		return err
	}
	if err := u.ingredientRepo.Delete(ctx, id); err != nil {
		return FromStoreError(err)
	}
	return nil
}
