package handler

import (
	"net/http"

	"github.com/Natoons/cynova/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/ingredients
type IngredientHandler struct {
	uc *usecase.IngredientUsecase
}

func NewIngredientHandler(uc *usecase.IngredientUsecase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

func (h *IngredientHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.list)
	g.GET("/search", h.search)
	g.GET("/bio", h.listOrganic)
	g.GET("/origin/:origine", h.listByOrigin)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	// 末尾スラッシュ（idが空）は"missing id"
	g.GET("/", h.detail)
	g.PUT("/", h.update)
	g.DELETE("/", h.delete)
}

func (h *IngredientHandler) list(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	organic, err := boolQuery(c, "bio")
	if err != nil {
		return writeError(c, err)
	}
	allergen, err := boolQuery(c, "allergene")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListIngredientsInput{
		PageInput: page,
		Q:         c.QueryParam("q"),
		Origin:    c.QueryParam("origine"),
		Organic:   organic,
		Allergen:  allergen,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IngredientHandler) search(c echo.Context) error {
	out, err := h.uc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// bio=trueのものだけ
func (h *IngredientHandler) listOrganic(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ListOrganic(c.Request().Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IngredientHandler) listByOrigin(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ListByOrigin(c.Request().Context(), c.Param("origine"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IngredientHandler) detail(c echo.Context) error {
	i, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, i)
}

func (h *IngredientHandler) create(c echo.Context) error {
	var req usecase.CreateIngredientInput
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}

	i, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, i)
}

func (h *IngredientHandler) update(c echo.Context) error {
	var req usecase.UpdateIngredientInput
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}

	i, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, i)
}

func (h *IngredientHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Ingredient deleted"})
}
