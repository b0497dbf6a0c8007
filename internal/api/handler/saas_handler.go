package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
)

// SaaSAPI is the platform-operator console surface. Routes using it
// are additionally gated on the staff flag.
type SaaSAPI interface {
	SaaSStats(ctx context.Context) (*domain.SaaSStats, error)
	Tenants(ctx context.Context) ([]domain.TenantSummary, error)
	Plans(ctx context.Context) ([]domain.SubscriptionPlan, error)
	CreateTenant(ctx context.Context, in *domain.CreateTenantInput) (*domain.TenantActionResult, error)
	SuspendTenant(ctx context.Context, tenantID int64) (*domain.TenantActionResult, error)
	ActivateTenant(ctx context.Context, tenantID int64) (*domain.TenantActionResult, error)
	ImpersonateTenant(ctx context.Context, tenantID int64) (*domain.ImpersonationGrant, error)
}

type SaaSHandler struct {
	api      SaaSAPI
	feedback ports.FeedbackService
}

func NewSaaSHandler(api SaaSAPI, feedback ports.FeedbackService) *SaaSHandler {
	return &SaaSHandler{api: api, feedback: feedback}
}

// requireStaff rejects non-staff sessions. The upstream enforces this
// too; checking here keeps tenant users from even reaching it.
func requireStaff(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	if !s.User.IsStaff {
		return echo.NewHTTPError(http.StatusForbidden, "staff only")
	}
	return nil
}

func (h *SaaSHandler) Stats(c echo.Context) error {
	if err := requireStaff(c); err != nil {
		return err
	}
	stats, err := h.api.SaaSStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *SaaSHandler) Tenants(c echo.Context) error {
	if err := requireStaff(c); err != nil {
		return err
	}
	tenants, err := h.api.Tenants(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenants)
}

func (h *SaaSHandler) Plans(c echo.Context) error {
	if err := requireStaff(c); err != nil {
		return err
	}
	plans, err := h.api.Plans(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// PublicPlans serves the plan catalog without a session. The pricing
// page renders it before signup, so it sits outside every guard.
func (h *SaaSHandler) PublicPlans(c echo.Context) error {
	plans, err := h.api.Plans(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *SaaSHandler) CreateTenant(c echo.Context) error {
	if err := requireStaff(c); err != nil {
		return err
	}
	var in domain.CreateTenantInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var result *domain.TenantActionResult
	err := track(c, h.feedback, "Provisioning tenant", func() error {
		var err error
		result, err = h.api.CreateTenant(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Tenant created")
	return c.JSON(http.StatusCreated, result)
}

func (h *SaaSHandler) SuspendTenant(c echo.Context) error {
	if err := requireStaff(c); err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	result, err := h.api.SuspendTenant(c.Request().Context(), id)
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Tenant suspended")
	return c.JSON(http.StatusOK, result)
}

func (h *SaaSHandler) ActivateTenant(c echo.Context) error {
	if err := requireStaff(c); err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	result, err := h.api.ActivateTenant(c.Request().Context(), id)
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Tenant activated")
	return c.JSON(http.StatusOK, result)
}

func (h *SaaSHandler) ImpersonateTenant(c echo.Context) error {
	if err := requireStaff(c); err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	grant, err := h.api.ImpersonateTenant(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, grant)
}
