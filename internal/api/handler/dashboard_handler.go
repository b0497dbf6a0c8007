package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

// DashboardAPI is the slice of the upstream client the dashboard
// pages read from.
type DashboardAPI interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	FarmOverview(ctx context.Context) (*domain.FarmOverview, error)
	BatchPerformance(ctx context.Context) (*domain.BatchPerformance, error)
	Health(ctx context.Context) (*domain.HealthCheck, error)
}

type DashboardHandler struct {
	api DashboardAPI
}

func NewDashboardHandler(api DashboardAPI) *DashboardHandler {
	return &DashboardHandler{api: api}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.api.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) FarmOverview(c echo.Context) error {
	overview, err := h.api.FarmOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) BatchPerformance(c echo.Context) error {
	perf, err := h.api.BatchPerformance(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, perf)
}

func (h *DashboardHandler) Health(c echo.Context) error {
	hc, err := h.api.Health(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hc)
}
