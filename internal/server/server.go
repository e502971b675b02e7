package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Natoons/cynova/internal/config"
	"github.com/Natoons/cynova/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const bodyLimit = "1M"

// New はミドルウェアとルートを登録したechoを返す。
func New(cfg config.Config, log zerolog.Logger, gormDB *gorm.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(cfg.IsProduction())

	//順番: request id → logger → recover
	e.Use(middleware.RequestID())
	e.Use(middleware.ContextLogger(log))
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.Secure())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))
	e.Use(echomw.BodyLimit(bodyLimit))

	RegisterRoutes(e, cfg, gormDB, time.Now())
	return e
}

// Start はShutdownされるまでブロックする。
func Start(e *echo.Echo, addr string) error {
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func Shutdown(ctx context.Context, e *echo.Echo) error {
	return e.Shutdown(ctx)
}
