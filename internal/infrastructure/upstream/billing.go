package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

func (c *Client) Subscription(ctx context.Context) (*domain.SubscriptionInfo, error) {
	var out domain.SubscriptionInfo
	if err := c.get(ctx, "/billing/subscription", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UsageStats(ctx context.Context) (*domain.UsageStats, error) {
	var out domain.UsageStats
	if err := c.get(ctx, "/billing/usage", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubscriptionInvoices(ctx context.Context) ([]domain.SubscriptionInvoice, error) {
	var out []domain.SubscriptionInvoice
	if err := c.get(ctx, "/billing/invoices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpgradePlan asks the billing backend to move the tenant to another
// plan. The target plan rides in the query string, not the body.
func (c *Client) UpgradePlan(ctx context.Context, planID int64) (*domain.UpgradeResult, error) {
	query := url.Values{"plan_id": {strconv.FormatInt(planID, 10)}}
	var out domain.UpgradeResult
	if err := c.post(ctx, "/billing/upgrade", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
