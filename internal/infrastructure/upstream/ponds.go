package upstream

import (
	"context"
	"fmt"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

func (c *Client) Species(ctx context.Context) ([]domain.Species, error) {
	var out []domain.Species
	if err := c.get(ctx, "/species/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Ponds(ctx context.Context) ([]domain.Pond, error) {
	var out []domain.Pond
	if err := c.get(ctx, "/ponds/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Pond(ctx context.Context, id int64) (*domain.Pond, error) {
	var out domain.Pond
	if err := c.get(ctx, fmt.Sprintf("/ponds/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePond(ctx context.Context, in *domain.PondInput) (*domain.Pond, error) {
	var out domain.Pond
	if err := c.post(ctx, "/ponds/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePond(ctx context.Context, id int64, in *domain.PondInput) (*domain.Pond, error) {
	var out domain.Pond
	if err := c.put(ctx, fmt.Sprintf("/ponds/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePond(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/ponds/%d", id))
}
