package handler

import (
	"net/http"

	"github.com/Natoons/cynova/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/users のCRUD（ログインとmeはAuthHandler）
type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	// 末尾スラッシュ（idが空）は"missing id"
	g.GET("/", h.detail)
	g.PUT("/", h.update)
	g.DELETE("/", h.delete)
}

func (h *UserHandler) list(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	newsletter, err := boolQuery(c, "newsletter")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListUsersInput{
		PageInput:  page,
		Q:          c.QueryParam("q"),
		Role:       c.QueryParam("role"),
		Newsletter: newsletter,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) detail(c echo.Context) error {
	u, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) create(c echo.Context) error {
	var req usecase.CreateUserInput
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}

	u, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

// passwordが来たらハッシュし直す
func (h *UserHandler) update(c echo.Context) error {
	var req usecase.UpdateUserInput
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}

	u, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "User deleted"})
}
