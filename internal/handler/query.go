package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Natoons/cynova/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// page（default 1）/ limit（default 10）。範囲チェックはusecase側
func pageQuery(c echo.Context) (usecase.PageInput, error) {
	in := usecase.PageInput{Page: usecase.DefaultPage, Limit: usecase.DefaultLimit}

	if v := strings.TrimSpace(c.QueryParam("page")); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return in, usecase.NewHTTPError(http.StatusBadRequest, "invalid page")
		}
		in.Page = p
	}

	if v := strings.TrimSpace(c.QueryParam("limit")); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return in, usecase.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		in.Limit = l
	}

	return in, nil
}

// "true"/"false"のみ受け付ける。空は指定なし
func boolQuery(c echo.Context, name string) (*bool, error) {
	switch strings.TrimSpace(c.QueryParam(name)) {
	case "":
		return nil, nil
	case "true":
		b := true
		return &b, nil
	case "false":
		b := false
		return &b, nil
	default:
		return nil, usecase.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
}

func decimalQuery(c echo.Context, name string) (*decimal.Decimal, error) {
	v := strings.TrimSpace(c.QueryParam(name))
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, usecase.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return &d, nil
}
