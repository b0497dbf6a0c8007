package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

// JournalEntryFilter narrows the journal entry listing. Zero values
// are omitted from the query.
type JournalEntryFilter struct {
	StartDate     string
	EndDate       string
	ReferenceType string
}

// RevaluationFilter narrows the biological asset revaluation listing.
type RevaluationFilter struct {
	BatchID   int64
	StartDate string
	EndDate   string
}

// Accounts lists the chart of accounts, optionally filtered by type
// (asset, liability, equity, revenue, expense).
func (c *Client) Accounts(ctx context.Context, accountType string) ([]domain.Account, error) {
	var query url.Values
	if accountType != "" {
		query = url.Values{"account_type": {accountType}}
	}
	var out []domain.Account
	if err := c.get(ctx, "/accounting/accounts", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Account(ctx context.Context, id int64) (*domain.Account, error) {
	var out domain.Account
	if err := c.get(ctx, fmt.Sprintf("/accounting/accounts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) JournalEntries(ctx context.Context, filter JournalEntryFilter) ([]domain.JournalEntry, error) {
	query := url.Values{}
	if filter.StartDate != "" {
		query.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("end_date", filter.EndDate)
	}
	if filter.ReferenceType != "" {
		query.Set("reference_type", filter.ReferenceType)
	}
	var out []domain.JournalEntry
	if err := c.get(ctx, "/accounting/journal-entries", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) JournalEntry(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	var out domain.JournalEntry
	if err := c.get(ctx, fmt.Sprintf("/accounting/journal-entries/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateJournalEntry(ctx context.Context, in *domain.JournalEntryInput) (*domain.JournalEntry, error) {
	var out domain.JournalEntry
	if err := c.post(ctx, "/accounting/journal-entries", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TrialBalance fetches the trial balance as of a date (empty = today).
func (c *Client) TrialBalance(ctx context.Context, asOfDate string) (*domain.TrialBalance, error) {
	var query url.Values
	if asOfDate != "" {
		query = url.Values{"as_of_date": {asOfDate}}
	}
	var out domain.TrialBalance
	if err := c.get(ctx, "/accounting/trial-balance", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BalanceSheet(ctx context.Context, asOfDate string) (*domain.BalanceSheet, error) {
	var query url.Values
	if asOfDate != "" {
		query = url.Values{"as_of_date": {asOfDate}}
	}
	var out domain.BalanceSheet
	if err := c.get(ctx, "/accounting/balance-sheet", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BiologicalAssetRevaluations(ctx context.Context, filter RevaluationFilter) ([]domain.BiologicalAssetRevaluation, error) {
	query := url.Values{}
	if filter.BatchID != 0 {
		query.Set("batch_id", strconv.FormatInt(filter.BatchID, 10))
	}
	if filter.StartDate != "" {
		query.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("end_date", filter.EndDate)
	}
	var out []domain.BiologicalAssetRevaluation
	if err := c.get(ctx, "/accounting/biological-asset-revaluations", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BiologicalAssetRevaluation(ctx context.Context, id int64) (*domain.BiologicalAssetRevaluation, error) {
	var out domain.BiologicalAssetRevaluation
	if err := c.get(ctx, fmt.Sprintf("/accounting/biological-asset-revaluations/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
