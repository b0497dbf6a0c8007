package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

type ReportsAPI interface {
	CostPerKgReport(ctx context.Context, batchID int64) ([]domain.CostPerKgReportItem, error)
	BatchProfitabilityReport(ctx context.Context, batchID int64) ([]domain.BatchProfitabilityItem, error)
	FeedEfficiencyReport(ctx context.Context, batchID int64) ([]domain.FeedEfficiencyItem, error)
	MortalityAnalysisReport(ctx context.Context, batchID int64) ([]domain.MortalityAnalysisItem, error)
}

type ReportsHandler struct {
	api ReportsAPI
}

func NewReportsHandler(api ReportsAPI) *ReportsHandler {
	return &ReportsHandler{api: api}
}

func reportBatch(c echo.Context) int64 {
	id, _ := strconv.ParseInt(c.QueryParam("batch_id"), 10, 64)
	return id
}

func (h *ReportsHandler) CostPerKg(c echo.Context) error {
	items, err := h.api.CostPerKgReport(c.Request().Context(), reportBatch(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ReportsHandler) BatchProfitability(c echo.Context) error {
	items, err := h.api.BatchProfitabilityReport(c.Request().Context(), reportBatch(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ReportsHandler) FeedEfficiency(c echo.Context) error {
	items, err := h.api.FeedEfficiencyReport(c.Request().Context(), reportBatch(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ReportsHandler) MortalityAnalysis(c echo.Context) error {
	items, err := h.api.MortalityAnalysisReport(c.Request().Context(), reportBatch(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
