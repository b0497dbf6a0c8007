package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
	"github.com/tidesight2026/tidesight/internal/infrastructure/upstream"
)

type AccountingAPI interface {
	Accounts(ctx context.Context, accountType string) ([]domain.Account, error)
	Account(ctx context.Context, id int64) (*domain.Account, error)
	JournalEntries(ctx context.Context, filter upstream.JournalEntryFilter) ([]domain.JournalEntry, error)
	JournalEntry(ctx context.Context, id int64) (*domain.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, in *domain.JournalEntryInput) (*domain.JournalEntry, error)
	TrialBalance(ctx context.Context, asOfDate string) (*domain.TrialBalance, error)
	BalanceSheet(ctx context.Context, asOfDate string) (*domain.BalanceSheet, error)
	BiologicalAssetRevaluations(ctx context.Context, filter upstream.RevaluationFilter) ([]domain.BiologicalAssetRevaluation, error)
	BiologicalAssetRevaluation(ctx context.Context, id int64) (*domain.BiologicalAssetRevaluation, error)
}

type AccountingHandler struct {
	api      AccountingAPI
	feedback ports.FeedbackService
}

func NewAccountingHandler(api AccountingAPI, feedback ports.FeedbackService) *AccountingHandler {
	return &AccountingHandler{api: api, feedback: feedback}
}

func (h *AccountingHandler) Accounts(c echo.Context) error {
	accounts, err := h.api.Accounts(c.Request().Context(), c.QueryParam("account_type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

func (h *AccountingHandler) Account(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	account, err := h.api.Account(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

func (h *AccountingHandler) JournalEntries(c echo.Context) error {
	entries, err := h.api.JournalEntries(c.Request().Context(), upstream.JournalEntryFilter{
		StartDate:     c.QueryParam("start_date"),
		EndDate:       c.QueryParam("end_date"),
		ReferenceType: c.QueryParam("reference_type"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *AccountingHandler) JournalEntry(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	entry, err := h.api.JournalEntry(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *AccountingHandler) CreateJournalEntry(c echo.Context) error {
	var in domain.JournalEntryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var entry *domain.JournalEntry
	err := track(c, h.feedback, "Posting journal entry", func() error {
		var err error
		entry, err = h.api.CreateJournalEntry(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Journal entry posted")
	return c.JSON(http.StatusCreated, entry)
}

func (h *AccountingHandler) TrialBalance(c echo.Context) error {
	tb, err := h.api.TrialBalance(c.Request().Context(), c.QueryParam("as_of_date"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tb)
}

func (h *AccountingHandler) BalanceSheet(c echo.Context) error {
	bs, err := h.api.BalanceSheet(c.Request().Context(), c.QueryParam("as_of_date"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bs)
}

func (h *AccountingHandler) Revaluations(c echo.Context) error {
	batchID, _ := strconv.ParseInt(c.QueryParam("batch_id"), 10, 64)
	revals, err := h.api.BiologicalAssetRevaluations(c.Request().Context(), upstream.RevaluationFilter{
		BatchID:   batchID,
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, revals)
}

func (h *AccountingHandler) Revaluation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	reval, err := h.api.BiologicalAssetRevaluation(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reval)
}
