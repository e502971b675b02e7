package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Natoons/cynova/internal/domain/model"
	"github.com/Natoons/cynova/internal/middleware"
	"github.com/Natoons/cynova/internal/usecase"
	auth "github.com/Natoons/cynova/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// レスポンス確認用
// =====================

type mwErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

type mwOKResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func newEcho(isProduction bool) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(isProduction)
	return e
}

func doGet(e *echo.Echo, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) mwErrorResponse {
	t.Helper()
	var body mwErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// =====================
// RequestID
// =====================

func TestRequestID_GeneratesAndKeeps(t *testing.T) {
	e := newEcho(false)
	e.Use(middleware.RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	rec := doGet(e, "/", nil)
	id := rec.Header().Get(echo.HeaderXRequestID)
	assert.Len(t, id, 36)
	assert.Equal(t, id, rec.Body.String())

	rec = doGet(e, "/", map[string]string{echo.HeaderXRequestID: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "abc-123", rec.Body.String())
}

// =====================
// RateLimiter
// =====================

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	e := newEcho(false)
	g := e.Group("/api", middleware.RateLimiter(2, time.Minute))
	g.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, doGet(e, "/api/ping", nil).Code)
	assert.Equal(t, http.StatusNoContent, doGet(e, "/api/ping", nil).Code)

	rec := doGet(e, "/api/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too many requests", decodeError(t, rec).Error)

	// 別IPは別カウント
	rec = doGet(e, "/api/ping", map[string]string{echo.HeaderXRealIP: "198.51.100.7"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimiter_GroupsAreIndependent(t *testing.T) {
	e := newEcho(false)
	a := e.Group("/a", middleware.RateLimiter(1, time.Minute))
	b := e.Group("/b", middleware.RateLimiter(1, time.Minute))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	a.GET("", ok)
	b.GET("", ok)

	assert.Equal(t, http.StatusNoContent, doGet(e, "/a", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(e, "/a", nil).Code)
	assert.Equal(t, http.StatusNoContent, doGet(e, "/b", nil).Code)
}

// =====================
// AuthJWT
// =====================

func newAuthEcho(issuer *auth.JWTIssuer) *echo.Echo {
	e := newEcho(false)
	e.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, mwOKResponse{
			UserID: middleware.GetUserID(c),
			Role:   middleware.GetUserRole(c),
		})
	}, middleware.AuthJWT(issuer))
	return e
}

func TestAuthJWT_ValidToken(t *testing.T) {
	issuer := auth.NewJWTIssuer("test_secret_0123456789", time.Hour)
	e := newAuthEcho(issuer)

	token, _, err := issuer.Issue("7f1c2d3e-0000-4000-8000-000000000001", model.RoleAdmin, time.Now())
	require.NoError(t, err)

	rec := doGet(e, "/me", map[string]string{echo.HeaderAuthorization: "Bearer " + token})
	require.Equal(t, http.StatusOK, rec.Code)

	var body mwOKResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "7f1c2d3e-0000-4000-8000-000000000001", body.UserID)
	assert.Equal(t, "admin", body.Role)
}

func TestAuthJWT_Rejects(t *testing.T) {
	issuer := auth.NewJWTIssuer("test_secret_0123456789", time.Hour)
	other := auth.NewJWTIssuer("another_secret_987654", time.Hour)
	e := newAuthEcho(issuer)

	forged, _, err := other.Issue("u1", model.RoleAdmin, time.Now())
	require.NoError(t, err)
	expired, _, err := issuer.Issue("u1", model.RoleStandard, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer  "},
		{"garbage", "Bearer not-a-jwt"},
		{"other secret", "Bearer " + forged},
		{"expired", "Bearer " + expired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := map[string]string{}
			if tc.header != "" {
				h[echo.HeaderAuthorization] = tc.header
			}
			rec := doGet(e, "/me", h)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "unauthorized", decodeError(t, rec).Error)
		})
	}
}

// =====================
// ErrorHandler
// =====================

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name    string
		prod    bool
		err     error
		status  int
		message string
		details []string
	}{
		{
			name:    "validation",
			err:     usecase.NewValidationError([]string{"nom is required"}),
			status:  http.StatusBadRequest,
			message: "validation failed",
			details: []string{"nom is required"},
		},
		{
			name:    "db error hides cause",
			err:     &usecase.HTTPError{Status: http.StatusInternalServerError, Message: "db error", Err: errors.New("conn refused")},
			status:  http.StatusInternalServerError,
			message: "db error",
		},
		{
			name:    "echo error",
			err:     echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body"),
			status:  http.StatusBadRequest,
			message: "invalid JSON body",
		},
		{
			name:    "unexpected in development",
			err:     errors.New("nil map"),
			status:  http.StatusInternalServerError,
			message: "internal error",
			details: []string{"nil map"},
		},
		{
			name:    "unexpected in production",
			prod:    true,
			err:     errors.New("nil map"),
			status:  http.StatusInternalServerError,
			message: "internal error",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEcho(tc.prod)
			e.GET("/boom", func(c echo.Context) error { return tc.err })

			rec := doGet(e, "/boom", nil)
			assert.Equal(t, tc.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tc.message, body.Error)
			assert.Equal(t, tc.details, body.Details)
		})
	}
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	e := newEcho(true)

	rec := doGet(e, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeError(t, rec).Error)
}
