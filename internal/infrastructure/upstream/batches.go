package upstream

import (
	"context"
	"fmt"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

func (c *Client) Batches(ctx context.Context) ([]domain.Batch, error) {
	var out []domain.Batch
	if err := c.get(ctx, "/batches/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Batch(ctx context.Context, id int64) (*domain.Batch, error) {
	var out domain.Batch
	if err := c.get(ctx, fmt.Sprintf("/batches/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBatch(ctx context.Context, in *domain.BatchInput) (*domain.Batch, error) {
	var out domain.Batch
	if err := c.post(ctx, "/batches/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBatch(ctx context.Context, id int64, in *domain.BatchInput) (*domain.Batch, error) {
	var out domain.Batch
	if err := c.put(ctx, fmt.Sprintf("/batches/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBatch(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/batches/%d", id))
}
