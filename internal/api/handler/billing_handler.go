package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
)

type BillingAPI interface {
	Subscription(ctx context.Context) (*domain.SubscriptionInfo, error)
	UsageStats(ctx context.Context) (*domain.UsageStats, error)
	SubscriptionInvoices(ctx context.Context) ([]domain.SubscriptionInvoice, error)
	UpgradePlan(ctx context.Context, planID int64) (*domain.UpgradeResult, error)
}

type BillingHandler struct {
	api      BillingAPI
	feedback ports.FeedbackService
}

func NewBillingHandler(api BillingAPI, feedback ports.FeedbackService) *BillingHandler {
	return &BillingHandler{api: api, feedback: feedback}
}

func (h *BillingHandler) Subscription(c echo.Context) error {
	sub, err := h.api.Subscription(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}

func (h *BillingHandler) Usage(c echo.Context) error {
	usage, err := h.api.UsageStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usage)
}

func (h *BillingHandler) Invoices(c echo.Context) error {
	invoices, err := h.api.SubscriptionInvoices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

type upgradeRequest struct {
	PlanID int64 `json:"plan_id" validate:"required,gt=0"`
}

func (h *BillingHandler) Upgrade(c echo.Context) error {
	var req upgradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var result *domain.UpgradeResult
	err := track(c, h.feedback, "Upgrading plan", func() error {
		var err error
		result, err = h.api.UpgradePlan(c.Request().Context(), req.PlanID)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, result.Message)
	return c.JSON(http.StatusOK, result)
}
