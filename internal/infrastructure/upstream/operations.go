package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

// FeedingLogs lists feeding logs, optionally filtered to one batch.
// batchID 0 lists everything.
func (c *Client) FeedingLogs(ctx context.Context, batchID int64) ([]domain.FeedingLog, error) {
	var query url.Values
	if batchID != 0 {
		query = url.Values{"batch_id": {strconv.FormatInt(batchID, 10)}}
	}
	var out []domain.FeedingLog
	if err := c.get(ctx, "/operations/feeding", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FeedingLog(ctx context.Context, id int64) (*domain.FeedingLog, error) {
	var out domain.FeedingLog
	if err := c.get(ctx, fmt.Sprintf("/operations/feeding/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateFeedingLog(ctx context.Context, in *domain.FeedingLogInput) (*domain.FeedingLog, error) {
	var out domain.FeedingLog
	if err := c.post(ctx, "/operations/feeding", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateFeedingLog(ctx context.Context, id int64, in *domain.FeedingLogInput) (*domain.FeedingLog, error) {
	var out domain.FeedingLog
	if err := c.put(ctx, fmt.Sprintf("/operations/feeding/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteFeedingLog(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/operations/feeding/%d", id))
}

// MortalityLogs lists mortality logs, optionally filtered to one batch.
func (c *Client) MortalityLogs(ctx context.Context, batchID int64) ([]domain.MortalityLog, error) {
	var query url.Values
	if batchID != 0 {
		query = url.Values{"batch_id": {strconv.FormatInt(batchID, 10)}}
	}
	var out []domain.MortalityLog
	if err := c.get(ctx, "/operations/mortality", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MortalityLog(ctx context.Context, id int64) (*domain.MortalityLog, error) {
	var out domain.MortalityLog
	if err := c.get(ctx, fmt.Sprintf("/operations/mortality/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMortalityLog(ctx context.Context, in *domain.MortalityLogInput) (*domain.MortalityLog, error) {
	var out domain.MortalityLog
	if err := c.post(ctx, "/operations/mortality", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMortalityLog(ctx context.Context, id int64, in *domain.MortalityLogInput) (*domain.MortalityLog, error) {
	var out domain.MortalityLog
	if err := c.put(ctx, fmt.Sprintf("/operations/mortality/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMortalityLog(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/operations/mortality/%d", id))
}

func (c *Client) BatchStatistics(ctx context.Context, batchID int64) (*domain.BatchStatistics, error) {
	var out domain.BatchStatistics
	if err := c.get(ctx, fmt.Sprintf("/operations/batch-stats/%d", batchID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
