package handler

import (
	"errors"
	"net/http"

	"github.com/Natoons/cynova/internal/usecase"
	auth "github.com/Natoons/cynova/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// 4xxはここで返す。5xxと想定外のエラーはechoのエラーハンドラに渡してログを残す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	}

	err = usecase.FromStoreError(err)
	if he, ok := usecase.AsHTTPError(err); ok && he.Status < http.StatusInternalServerError {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message, Details: he.Details})
	}

	return err
}

// JSON以外のbodyや型違いは400
func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	return nil
}
