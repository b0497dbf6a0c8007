package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

type stubSaaSAPI struct {
	plansFn func(ctx context.Context) ([]domain.SubscriptionPlan, error)
}

func (s *stubSaaSAPI) SaaSStats(context.Context) (*domain.SaaSStats, error) { return nil, nil }

func (s *stubSaaSAPI) Tenants(context.Context) ([]domain.TenantSummary, error) { return nil, nil }

func (s *stubSaaSAPI) Plans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	return s.plansFn(ctx)
}

func (s *stubSaaSAPI) CreateTenant(context.Context, *domain.CreateTenantInput) (*domain.TenantActionResult, error) {
	return nil, nil
}

func (s *stubSaaSAPI) SuspendTenant(context.Context, int64) (*domain.TenantActionResult, error) {
	return nil, nil
}

func (s *stubSaaSAPI) ActivateTenant(context.Context, int64) (*domain.TenantActionResult, error) {
	return nil, nil
}

func (s *stubSaaSAPI) ImpersonateTenant(context.Context, int64) (*domain.ImpersonationGrant, error) {
	return nil, nil
}

func TestSaaSHandler_PublicPlans_NoSessionRequired(t *testing.T) {
	e := newEcho()
	api := &stubSaaSAPI{
		plansFn: func(ctx context.Context) ([]domain.SubscriptionPlan, error) {
			return []domain.SubscriptionPlan{{ID: 1, Name: "Starter", PriceMonthly: 29}}, nil
		},
	}
	h := NewSaaSHandler(api, &stubFeedback{})

	c, rec := authedContext(e, http.MethodGet, "/api/saas/plans/public", "", nil)

	if err := h.PublicPlans(c); err != nil {
		t.Fatalf("PublicPlans: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"Starter"`) {
		t.Errorf("body missing plan name: %s", rec.Body.String())
	}
}

func TestSaaSHandler_Plans_StaffOnly(t *testing.T) {
	e := newEcho()
	api := &stubSaaSAPI{
		plansFn: func(ctx context.Context) ([]domain.SubscriptionPlan, error) {
			t.Fatal("plan catalog reached without the staff flag")
			return nil, nil
		},
	}
	h := NewSaaSHandler(api, &stubFeedback{})

	c, _ := authedContext(e, http.MethodGet, "/api/saas/plans", "", testSession())

	err := h.Plans(c)
	if err == nil {
		t.Fatal("Plans allowed a non-staff session")
	}
}
