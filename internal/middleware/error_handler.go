package middleware

import (
	"errors"
	"net/http"

	"github.com/Natoons/cynova/internal/usecase"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// 全エラーの出口。想定外のエラーは500にし、本番以外では中身をdetailsに出す
func ErrorHandler(isProduction bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		var (
			status = http.StatusInternalServerError
			body   = errorJSON("internal error")
		)

		var he *usecase.HTTPError
		var ee *echo.HTTPError
		switch {
		case errors.As(err, &he):
			status = he.Status
			body = errorResponse{Error: he.Message, Details: he.Details}
		case errors.As(err, &ee):
			status = ee.Code
			if msg, ok := ee.Message.(string); ok {
				body = errorJSON(msg)
			} else {
				body = errorJSON(http.StatusText(ee.Code))
			}
		}

		if status >= http.StatusInternalServerError {
			GetLogger(c).Error().Err(err).Int("status", status).Msg("request failed")
			if !isProduction && he == nil {
				body.Details = []string{err.Error()}
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}
