package middleware

import (
	"net/http"
	"time"

	"github.com/Natoons/cynova/internal/usecase"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// IPごとに window あたり max 回まで。ルーターグループごとに別インスタンスを作る
func RateLimiter(max int, window time.Duration) echo.MiddlewareFunc {
	if max < 1 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(max) / window.Seconds()),
		Burst:     max,
		ExpiresIn: window,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return usecase.NewHTTPError(http.StatusForbidden, "forbidden")
		},
		// 429はエラーハンドラで共通の形にする
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return usecase.NewHTTPError(http.StatusTooManyRequests, "too many requests")
		},
	})
}
