package upstream

import (
	"context"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := c.get(ctx, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FarmOverview(ctx context.Context) (*domain.FarmOverview, error) {
	var out domain.FarmOverview
	if err := c.get(ctx, "/dashboard/farm-overview", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BatchPerformance(ctx context.Context) (*domain.BatchPerformance, error) {
	var out domain.BatchPerformance
	if err := c.get(ctx, "/dashboard/batch-performance", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Health(ctx context.Context) (*domain.HealthCheck, error) {
	var out domain.HealthCheck
	if err := c.get(ctx, "/dashboard/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
