package handler

import (
	"net/http"

	"github.com/Natoons/cynova/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/blogs
type BlogHandler struct {
	uc *usecase.BlogUsecase
}

func NewBlogHandler(uc *usecase.BlogUsecase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

func (h *BlogHandler) RegisterRoutes(g *echo.Group) {
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

func (h *BlogHandler) list(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	published, err := boolQuery(c, "publie")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListBlogsInput{
		PageInput: page,
		Q:         c.QueryParam("q"),
		Category:  c.QueryParam("categorie"),
		Published: published,
		Author:    c.QueryParam("auteur"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BlogHandler) search(c echo.Context) error {
	out, err := h.uc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BlogHandler) listByCategory(c echo.Context) error {
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

func (h *BlogHandler) detail(c echo.Context) error {
	b, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BlogHandler) create(c echo.Context) error {
	var req usecase.CreateBlogInput
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}

	b, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BlogHandler) update(c echo.Context) error {
	var req usecase.UpdateBlogInput
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}

	b, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BlogHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Blog deleted"})
}
