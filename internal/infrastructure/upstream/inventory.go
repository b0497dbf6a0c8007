package upstream

import (
	"context"
	"fmt"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

func (c *Client) FeedTypes(ctx context.Context) ([]domain.FeedType, error) {
	var out []domain.FeedType
	if err := c.get(ctx, "/inventory/feeds/types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FeedInventory(ctx context.Context) ([]domain.FeedInventory, error) {
	var out []domain.FeedInventory
	if err := c.get(ctx, "/inventory/feeds", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FeedInventoryItem(ctx context.Context, id int64) (*domain.FeedInventory, error) {
	var out domain.FeedInventory
	if err := c.get(ctx, fmt.Sprintf("/inventory/feeds/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateFeedInventory(ctx context.Context, in *domain.FeedInventoryInput) (*domain.FeedInventory, error) {
	var out domain.FeedInventory
	if err := c.post(ctx, "/inventory/feeds", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateFeedInventory(ctx context.Context, id int64, in *domain.FeedInventoryInput) (*domain.FeedInventory, error) {
	var out domain.FeedInventory
	if err := c.put(ctx, fmt.Sprintf("/inventory/feeds/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteFeedInventory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/inventory/feeds/%d", id))
}

func (c *Client) Medicines(ctx context.Context) ([]domain.Medicine, error) {
	var out []domain.Medicine
	if err := c.get(ctx, "/inventory/medicines/types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MedicineInventory(ctx context.Context) ([]domain.MedicineInventory, error) {
	var out []domain.MedicineInventory
	if err := c.get(ctx, "/inventory/medicines", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MedicineInventoryItem(ctx context.Context, id int64) (*domain.MedicineInventory, error) {
	var out domain.MedicineInventory
	if err := c.get(ctx, fmt.Sprintf("/inventory/medicines/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMedicineInventory(ctx context.Context, in *domain.MedicineInventoryInput) (*domain.MedicineInventory, error) {
	var out domain.MedicineInventory
	if err := c.post(ctx, "/inventory/medicines", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMedicineInventory(ctx context.Context, id int64, in *domain.MedicineInventoryInput) (*domain.MedicineInventory, error) {
	var out domain.MedicineInventory
	if err := c.put(ctx, fmt.Sprintf("/inventory/medicines/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMedicineInventory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/inventory/medicines/%d", id))
}
