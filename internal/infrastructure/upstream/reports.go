package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

func batchQuery(batchID int64) url.Values {
	if batchID == 0 {
		return nil
	}
	return url.Values{"batch_id": {strconv.FormatInt(batchID, 10)}}
}

func (c *Client) CostPerKgReport(ctx context.Context, batchID int64) ([]domain.CostPerKgReportItem, error) {
	var out []domain.CostPerKgReportItem
	if err := c.get(ctx, "/reports/cost-per-kg", batchQuery(batchID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BatchProfitabilityReport(ctx context.Context, batchID int64) ([]domain.BatchProfitabilityItem, error) {
	var out []domain.BatchProfitabilityItem
	if err := c.get(ctx, "/reports/batch-profitability", batchQuery(batchID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FeedEfficiencyReport(ctx context.Context, batchID int64) ([]domain.FeedEfficiencyItem, error) {
	var out []domain.FeedEfficiencyItem
	if err := c.get(ctx, "/reports/feed-efficiency", batchQuery(batchID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MortalityAnalysisReport(ctx context.Context, batchID int64) ([]domain.MortalityAnalysisItem, error) {
	var out []domain.MortalityAnalysisItem
	if err := c.get(ctx, "/reports/mortality-analysis", batchQuery(batchID), &out); err != nil {
		return nil, err
	}
	return out, nil
}
