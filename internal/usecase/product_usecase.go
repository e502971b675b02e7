package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/Natoons/cynova/internal/domain/model"
	repo "github.com/Natoons/cynova/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	validator   Validator
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, validator Validator) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		validator:   validator,
	}
}

// GET /api/productsの入力
type ListProductsInput struct {
	PageInput
	Q        string
	Category string
	Active   *bool
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

type ProductListOutput struct {
	Products   []model.Product `json:"products"`
	Pagination Pagination      `json:"pagination"`
}

type ProductSearchOutput struct {
	Products []model.Product `json:"products"`
	Count    int             `json:"count"`
}

// POST /api/productsのbody
type CreateProductInput struct {
	Name          string           `json:"nom" validate:"required,min=2,max=100"`
	Description   string           `json:"description" validate:"required,min=10,max=1000"`
	Price         decimal.Decimal  `json:"prix" validate:"required,gt=0,lte=99999.99,decimals2"`
	Category      string           `json:"categorie" validate:"required,oneof=savon shampoing creme huile baume serum masque deodorant"`
	Stock         *int             `json:"stock" validate:"required,gte=0"`
	YukaScore     *int             `json:"yukaScore" validate:"omitempty,gte=0,lte=100"`
	Provenance    *string          `json:"provenance" validate:"omitempty,max=100"`
	IngredientIDs model.StringList `json:"ingredientIds" validate:"omitempty,dive,required,max=64"`
	BenefitIDs    model.StringList `json:"bienfaitIds" validate:"omitempty,dive,required,max=64"`
	QuantityIDs   model.StringList `json:"quantiteIds" validate:"omitempty,dive,required,max=64"`
	BlogIDs       model.StringList `json:"blogIds" validate:"omitempty,dive,required,max=64"`
	Active        *bool            `json:"actif"`
}

// PUT /api/products/:idのbody（送られた項目だけ更新）
type UpdateProductInput struct {
	Name          *string           `json:"nom" validate:"omitempty,min=2,max=100"`
	Description   *string           `json:"description" validate:"omitempty,min=10,max=1000"`
	Price         *decimal.Decimal  `json:"prix" validate:"omitempty,gt=0,lte=99999.99,decimals2"`
	Category      *string           `json:"categorie" validate:"omitempty,oneof=savon shampoing creme huile baume serum masque deodorant"`
	Stock         *int              `json:"stock" validate:"omitempty,gte=0"`
	YukaScore     *int              `json:"yukaScore" validate:"omitempty,gte=0,lte=100"`
	Provenance    *string           `json:"provenance" validate:"omitempty,max=100"`
	IngredientIDs *model.StringList `json:"ingredientIds" validate:"omitempty,dive,required,max=64"`
	BenefitIDs    *model.StringList `json:"bienfaitIds" validate:"omitempty,dive,required,max=64"`
	QuantityIDs   *model.StringList `json:"quantiteIds" validate:"omitempty,dive,required,max=64"`
	BlogIDs       *model.StringList `json:"blogIds" validate:"omitempty,dive,required,max=64"`
	Active        *bool             `json:"actif"`
}

// 商品一覧
func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if err := in.PageInput.validate(); err != nil {
		return ProductListOutput{}, err
	}
	q, err := normalizeListQuery(in.Q)
	if err != nil {
		return ProductListOutput{}, err
	}

	query := repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Q:        q,
		Active:   in.Active,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
	}

	if in.Category != "" {
		c := model.ProductCategory(in.Category)
		if !c.Valid() {
			return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid categorie")
		}
		query.Category = &c
	}

	//価格帯
	if in.MinPrice != nil && in.MinPrice.IsNegative() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "minPrix must be >= 0")
	}
	if in.MaxPrice != nil && in.MaxPrice.IsNegative() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "maxPrix must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "minPrix must be <= maxPrix")
	}

	items, total, err := u.productRepo.List(ctx, query)
	if err != nil {
		return ProductListOutput{}, FromStoreError(err)
	}

	return ProductListOutput{
		Products:   items,
		Pagination: NewPagination(in.Page, in.Limit, total),
	}, nil
}

// カテゴリ別一覧
func (u *ProductUsecase) ListByCategory(ctx context.Context, category string, page PageInput) (ProductListOutput, error) {
	if strings.TrimSpace(category) == "" {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "missing categorie")
	}
	return u.List(ctx, ListProductsInput{PageInput: page, Category: category})
}

// ページングなしの検索
func (u *ProductUsecase) Search(ctx context.Context, q string) (ProductSearchOutput, error) {
	q, err := normalizeSearchQuery(q)
	if err != nil {
		return ProductSearchOutput{}, err
	}

	items, _, err := u.productRepo.List(ctx, repo.ProductListQuery{Q: q})
	if err != nil {
		return ProductSearchOutput{}, FromStoreError(err)
	}

	return ProductSearchOutput{Products: items, Count: len(items)}, nil
}

// 商品詳細
func (u *ProductUsecase) Get(ctx context.Context, id string) (model.Product, error) {
	if err := checkID(id, "product"); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, FromStoreError(err)
	}
	return p, nil
}

// 商品の作成
func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := u.validator.Validate(in); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Category:      model.ProductCategory(in.Category),
		Stock:         *in.Stock,
		YukaScore:     in.YukaScore,
		Provenance:    in.Provenance,
		IngredientIDs: in.IngredientIDs.Normalize(),
		BenefitIDs:    in.BenefitIDs.Normalize(),
		QuantityIDs:   in.QuantityIDs.Normalize(),
		BlogIDs:       in.BlogIDs.Normalize(),
		Active:        true,
	}
	if in.Active != nil {
		p.Active = *in.Active
	}

	if err := u.productRepo.Create(ctx, &p); err != nil {
		return model.Product{}, FromStoreError(err)
	}
	return p, nil
}

// 商品の更新
func (u *ProductUsecase) Update(ctx context.Context, id string, in UpdateProductInput) (model.Product, error) {
	if err := checkID(id, "product"); err != nil {
		return model.Product{}, err
	}
	in.Name = trimPtr(in.Name)
	if err := u.validator.Validate(in); err != nil {
		return model.Product{}, err
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Category != nil {
		fields["category"] = model.ProductCategory(*in.Category)
	}
	if in.Stock != nil {
		fields["stock"] = *in.Stock
	}
	if in.YukaScore != nil {
		fields["yuka_score"] = *in.YukaScore
	}
	if in.Provenance != nil {
		fields["provenance"] = *in.Provenance
	}
	if in.IngredientIDs != nil {
		fields["ingredient_ids"] = in.IngredientIDs.Normalize()
	}
	if in.BenefitIDs != nil {
		fields["benefit_ids"] = in.BenefitIDs.Normalize()
	}
	if in.QuantityIDs != nil {
		fields["quantity_ids"] = in.QuantityIDs.Normalize()
	}
	if in.BlogIDs != nil {
		fields["blog_ids"] = in.BlogIDs.Normalize()
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	if err := u.productRepo.Update(ctx, id, fields); err != nil {
		return model.Product{}, FromStoreError(err)
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, FromStoreError(err)
	}
	return p, nil
}

// 商品削除
func (u *ProductUsecase) Delete(ctx context.Context, id string) error {
	if err := checkID(id, "product"); err != nil {
		return err
	}

	if err := u.productRepo.Delete(ctx, id); err != nil {
		return FromStoreError(err)
	}
	return nil
}
