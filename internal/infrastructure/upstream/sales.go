package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

// HarvestFilter narrows the harvest listing. Zero values are omitted.
type HarvestFilter struct {
	BatchID int64
	Status  string
}

func (c *Client) Harvests(ctx context.Context, filter HarvestFilter) ([]domain.Harvest, error) {
	query := url.Values{}
	if filter.BatchID != 0 {
		query.Set("batch_id", strconv.FormatInt(filter.BatchID, 10))
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	var out []domain.Harvest
	if err := c.get(ctx, "/sales/harvests", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateHarvest(ctx context.Context, in *domain.HarvestInput) (*domain.Harvest, error) {
	var out domain.Harvest
	if err := c.post(ctx, "/sales/harvests", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SalesOrders(ctx context.Context, status string) ([]domain.SalesOrder, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {status}}
	}
	var out []domain.SalesOrder
	if err := c.get(ctx, "/sales/sales-orders", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSalesOrder(ctx context.Context, in *domain.SalesOrderInput) (*domain.SalesOrder, error) {
	var out domain.SalesOrder
	if err := c.post(ctx, "/sales/sales-orders", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Invoices(ctx context.Context, status string) ([]domain.Invoice, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {status}}
	}
	var out []domain.Invoice
	if err := c.get(ctx, "/sales/invoices", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateInvoice(ctx context.Context, salesOrderID int64) (*domain.Invoice, error) {
	body := map[string]int64{"sales_order_id": salesOrderID}
	var out domain.Invoice
	if err := c.post(ctx, "/sales/invoices", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InvoicePDF downloads the rendered invoice as raw PDF bytes.
func (c *Client) InvoicePDF(ctx context.Context, invoiceID int64) ([]byte, error) {
	path := fmt.Sprintf("/sales/invoices/%d/pdf", invoiceID)
	resp, err := c.send(ctx, http.MethodGet, path, nil, nil, "application/pdf")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.check(ctx, resp, http.MethodGet, path); err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: read body: %w", path, err)
	}
	return raw, nil
}

// TraceabilityByInvoice returns the farm-to-invoice chain for an
// invoice. The payload shape is owned by the reporting backend and
// forwarded opaquely.
func (c *Client) TraceabilityByInvoice(ctx context.Context, invoiceID int64) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/traceability/by-invoice/%d", invoiceID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TraceabilityByBatch returns the full downstream chain for a batch.
func (c *Client) TraceabilityByBatch(ctx context.Context, batchID int64) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/traceability/by-batch/%d", batchID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
