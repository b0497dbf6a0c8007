package upstream

import (
	"context"
	"fmt"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

func (c *Client) FarmInfo(ctx context.Context) (*domain.FarmInfo, error) {
	var out domain.FarmInfo
	if err := c.get(ctx, "/farm/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateFarmInfo(ctx context.Context, in *domain.FarmInfoInput) (*domain.FarmInfo, error) {
	var out domain.FarmInfo
	if err := c.put(ctx, "/farm/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.get(ctx, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, in *domain.CreateUserInput) (*domain.User, error) {
	var out domain.User
	if err := c.post(ctx, "/users", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, in *domain.UpdateUserInput) (*domain.User, error) {
	var out domain.User
	if err := c.put(ctx, fmt.Sprintf("/users/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
