package upstream

import (
	"context"
	"fmt"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

func (c *Client) SaaSStats(ctx context.Context) (*domain.SaaSStats, error) {
	var out domain.SaaSStats
	if err := c.get(ctx, "/saas/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Tenants(ctx context.Context) ([]domain.TenantSummary, error) {
	var out []domain.TenantSummary
	if err := c.get(ctx, "/saas/tenants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Plans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	var out []domain.SubscriptionPlan
	if err := c.get(ctx, "/saas/plans", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTenant(ctx context.Context, in *domain.CreateTenantInput) (*domain.TenantActionResult, error) {
	var out domain.TenantActionResult
	if err := c.post(ctx, "/saas/tenants/create", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SuspendTenant(ctx context.Context, tenantID int64) (*domain.TenantActionResult, error) {
	var out domain.TenantActionResult
	if err := c.post(ctx, fmt.Sprintf("/saas/tenants/%d/suspend", tenantID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActivateTenant(ctx context.Context, tenantID int64) (*domain.TenantActionResult, error) {
	var out domain.TenantActionResult
	if err := c.post(ctx, fmt.Sprintf("/saas/tenants/%d/activate", tenantID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImpersonateTenant issues a token pair scoped to the tenant so the
// platform operator can act inside it.
func (c *Client) ImpersonateTenant(ctx context.Context, tenantID int64) (*domain.ImpersonationGrant, error) {
	var out domain.ImpersonationGrant
	if err := c.post(ctx, fmt.Sprintf("/saas/tenants/%d/impersonate", tenantID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
