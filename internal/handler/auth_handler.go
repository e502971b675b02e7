package handler

import (
	"net/http"

	"github.com/Natoons/cynova/internal/domain/model"
	"github.com/Natoons/cynova/internal/middleware"
	"github.com/Natoons/cynova/internal/usecase"
	auth "github.com/Natoons/cynova/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	loginUC *auth.LoginUsecase   // ログインusecase
	userUC  *usecase.UserUsecase // /me 用
}

// DIコンストラクタ
func NewAuthHandler(loginUC *auth.LoginUsecase, userUC *usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		userUC:  userUC,
	}
}

// POST /api/users/login のレスポンス
type loginResponse struct {
	Message string              `json:"message"`
	User    model.User          `json:"user"`
	Token   auth.JwtAccessToken `json:"token"`
}

// authMWはBearerトークンの検証ミドルウェア
func (h *AuthHandler) RegisterRoutes(g *echo.Group, authMW echo.MiddlewareFunc) {
	g.POST("/login", h.login)
	g.GET("/me", h.me, authMW)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req auth.LoginInput
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.loginUC.Execute(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		User:    out.User,
		Token:   out.Token,
	})
}

func (h *AuthHandler) me(c echo.Context) error {
	u, err := h.userUC.Me(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
