package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Natoons/cynova/internal/middleware"

	"github.com/labstack/echo/v4"
)

const (
	ServiceName    = "Cynova API"
	ServiceVersion = "1.0.0"
)

// DBの疎通確認
type Pinger func(ctx context.Context) error

// GET / と GET /health
type SystemHandler struct {
	env       string
	ping      Pinger
	startedAt time.Time
	now       func() time.Time
}

func NewSystemHandler(env string, ping Pinger, startedAt time.Time) *SystemHandler {
	return &SystemHandler{
		env:       env,
		ping:      ping,
		startedAt: startedAt,
		now:       time.Now,
	}
}

type rootResponse struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Endpoints   map[string]string `json:"endpoints"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Uptime    float64   `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

func (h *SystemHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.root)
	e.GET("/health", h.health)
}

func (h *SystemHandler) root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Name:        ServiceName,
		Version:     ServiceVersion,
		Environment: h.env,
		Endpoints: map[string]string{
			"products":    "/api/products",
			"ingredients": "/api/ingredients",
			"blogs":       "/api/blogs",
			"users":       "/api/users",
			"health":      "/health",
		},
	})
}

// DBに繋がらなければ503
func (h *SystemHandler) health(c echo.Context) error {
	now := h.now()
	res := healthResponse{
		Status:    "OK",
		Uptime:    now.Sub(h.startedAt).Seconds(),
		Timestamp: now.UTC(),
		Database:  "up",
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("database ping failed")
		res.Status = "DEGRADED"
		res.Database = "down"
		return c.JSON(http.StatusServiceUnavailable, res)
	}

	return c.JSON(http.StatusOK, res)
}
