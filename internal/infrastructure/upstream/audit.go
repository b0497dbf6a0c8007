package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

func (c *Client) AuditLogs(ctx context.Context, filter domain.AuditLogFilter) ([]domain.AuditLog, error) {
	query := url.Values{}
	if filter.ActionType != "" {
		query.Set("action_type", filter.ActionType)
	}
	if filter.EntityType != "" {
		query.Set("entity_type", filter.EntityType)
	}
	if filter.UserID != 0 {
		query.Set("user_id", strconv.FormatInt(filter.UserID, 10))
	}
	if filter.DateFrom != "" {
		query.Set("start_date", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query.Set("end_date", filter.DateTo)
	}
	if filter.Limit != 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	var out []domain.AuditLog
	if err := c.get(ctx, "/audit/logs", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AuditLog(ctx context.Context, id int64) (*domain.AuditLog, error) {
	var out domain.AuditLog
	if err := c.get(ctx, fmt.Sprintf("/audit/logs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
