package handler

import (
	"net/http"

	"github.com/Natoons/cynova/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/products
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 固定パスは/:idより先に登録する
func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.list)
	g.GET("/search", h.search)
	g.GET("/category/:categorie", h.listByCategory)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	// 末尾スラッシュ（idが空）は"missing id"
	g.GET("/", h.detail)
	g.PUT("/", h.update)
	g.DELETE("/", h.delete)
}

func (h *ProductHandler) list(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	active, err := boolQuery(c, "actif")
	if err != nil {
		return writeError(c, err)
	}
	minPrice, err := decimalQuery(c, "minPrix")
	if err != nil {
		return writeError(c, err)
	}
	maxPrice, err := decimalQuery(c, "maxPrix")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListProductsInput{
		PageInput: page,
		Q:         c.QueryParam("q"),
		Category:  c.QueryParam("categorie"),
		Active:    active,
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) search(c echo.Context) error {
	out, err := h.uc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) listByCategory(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ListByCategory(c.Request().Context(), c.Param("categorie"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req usecase.CreateProductInput
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	var req usecase.UpdateProductInput
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted"})
}
