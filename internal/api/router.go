package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tidesight2026/tidesight/internal/api/handler"
	"github.com/tidesight2026/tidesight/internal/api/middleware"
	"github.com/tidesight2026/tidesight/internal/core/permissions"
	"github.com/tidesight2026/tidesight/internal/core/ports"
	"github.com/tidesight2026/tidesight/internal/infrastructure/upstream"
)

// Dependencies carries everything the router needs, wired in main.
type Dependencies struct {
	Sessions   ports.SessionService
	Feedback   ports.FeedbackService
	Upstream   *upstream.Client
	Redis      *redis.Client
	CookieName string
	CookieTTL  time.Duration
	Log        zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered. Two
// route classes share the handlers: page routes, guarded with
// redirects like the browser expects, and the /api surface, guarded
// with status codes.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("tidesight"))

	// --- Guards ---
	pageAuth := middleware.RequireSession(deps.Sessions, deps.CookieName)
	apiAuth := middleware.RequireAPISession(deps.Sessions, deps.CookieName)
	publicOnly := middleware.PublicOnly(deps.Sessions, deps.CookieName)
	reportsGate := middleware.RequireFeature(permissions.FeatureReports)
	accountingGate := middleware.RequireFeature(permissions.FeatureAccounting)
	salesGate := middleware.RequireFeature(permissions.FeatureSales)

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(deps.Sessions, deps.Feedback, deps.CookieName, deps.CookieTTL)
	uiHandler := handler.NewUIHandler(deps.Feedback)
	dashboardHandler := handler.NewDashboardHandler(deps.Upstream)
	pondHandler := handler.NewPondHandler(deps.Upstream, deps.Feedback)
	batchHandler := handler.NewBatchHandler(deps.Upstream, deps.Feedback)
	inventoryHandler := handler.NewInventoryHandler(deps.Upstream, deps.Feedback)
	operationsHandler := handler.NewOperationsHandler(deps.Upstream, deps.Feedback)
	accountingHandler := handler.NewAccountingHandler(deps.Upstream, deps.Feedback)
	salesHandler := handler.NewSalesHandler(deps.Upstream, deps.Feedback)
	reportsHandler := handler.NewReportsHandler(deps.Upstream)
	auditHandler := handler.NewAuditHandler(deps.Upstream)
	billingHandler := handler.NewBillingHandler(deps.Upstream, deps.Feedback)
	saasHandler := handler.NewSaaSHandler(deps.Upstream, deps.Feedback)
	farmHandler := handler.NewFarmHandler(deps.Upstream, deps.Feedback, deps.Sessions)

	// --- Session lifecycle ---
	e.POST("/session/login", sessionHandler.Login, publicOnly)
	e.POST("/session/logout", sessionHandler.Logout, apiAuth)
	e.GET("/session", sessionHandler.Me, apiAuth)
	e.POST("/session/refresh", sessionHandler.Refresh)

	// --- UI feedback (polled by the page shell) ---
	ui := e.Group("/ui", apiAuth)
	ui.GET("/state", uiHandler.State)
	ui.DELETE("/toasts", uiHandler.ClearToasts)
	ui.DELETE("/toasts/:id", uiHandler.DismissToast)

	// --- Page routes: each answers with its bootstrap payload ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/login")
	})
	e.GET("/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"page": "login"})
	}, publicOnly)

	// Plan catalog for the pricing page, reachable before signup.
	e.GET("/api/saas/plans/public", saasHandler.PublicPlans)

	pages := e.Group("", pageAuth)
	pages.GET("/dashboard", dashboardHandler.Stats)
	pages.GET("/farm", dashboardHandler.FarmOverview)
	pages.GET("/ponds", pondHandler.List)
	pages.GET("/batches", batchHandler.List)
	pages.GET("/inventory", inventoryHandler.ListFeeds)
	pages.GET("/operations", operationsHandler.ListFeeding)
	pages.GET("/billing", billingHandler.Subscription)
	pages.GET("/saas-admin", saasHandler.Stats)
	pages.GET("/settings", farmHandler.Info)
	pages.GET("/reports", reportsHandler.CostPerKg, reportsGate)
	pages.GET("/accounting", accountingHandler.Accounts, accountingGate)
	pages.GET("/audit-logs", auditHandler.List, accountingGate)
	pages.GET("/biological-asset-revaluations", accountingHandler.Revaluations, accountingGate)
	pages.GET("/harvests", salesHandler.Harvests, salesGate)
	pages.GET("/sales-orders", salesHandler.SalesOrders, salesGate)
	pages.GET("/invoices", salesHandler.Invoices, salesGate)

	// --- API surface ---
	api := e.Group("/api", apiAuth)

	api.GET("/dashboard/stats", dashboardHandler.Stats)
	api.GET("/dashboard/farm-overview", dashboardHandler.FarmOverview)
	api.GET("/dashboard/batch-performance", dashboardHandler.BatchPerformance)
	api.GET("/dashboard/health", dashboardHandler.Health)

	api.GET("/species", pondHandler.Species)
	api.GET("/ponds", pondHandler.List)
	api.POST("/ponds", pondHandler.Create)
	api.GET("/ponds/:id", pondHandler.Get)
	api.PUT("/ponds/:id", pondHandler.Update)
	api.DELETE("/ponds/:id", pondHandler.Delete)

	api.GET("/batches", batchHandler.List)
	api.POST("/batches", batchHandler.Create)
	api.GET("/batches/:id", batchHandler.Get)
	api.PUT("/batches/:id", batchHandler.Update)
	api.DELETE("/batches/:id", batchHandler.Delete)

	api.GET("/inventory/feeds/types", inventoryHandler.FeedTypes)
	api.GET("/inventory/feeds", inventoryHandler.ListFeeds)
	api.POST("/inventory/feeds", inventoryHandler.CreateFeed)
	api.GET("/inventory/feeds/:id", inventoryHandler.GetFeed)
	api.PUT("/inventory/feeds/:id", inventoryHandler.UpdateFeed)
	api.DELETE("/inventory/feeds/:id", inventoryHandler.DeleteFeed)
	api.GET("/inventory/medicines/types", inventoryHandler.MedicineTypes)
	api.GET("/inventory/medicines", inventoryHandler.ListMedicines)
	api.POST("/inventory/medicines", inventoryHandler.CreateMedicine)
	api.GET("/inventory/medicines/:id", inventoryHandler.GetMedicine)
	api.PUT("/inventory/medicines/:id", inventoryHandler.UpdateMedicine)
	api.DELETE("/inventory/medicines/:id", inventoryHandler.DeleteMedicine)

	api.GET("/operations/feeding", operationsHandler.ListFeeding)
	api.POST("/operations/feeding", operationsHandler.CreateFeeding)
	api.GET("/operations/feeding/:id", operationsHandler.GetFeeding)
	api.PUT("/operations/feeding/:id", operationsHandler.UpdateFeeding)
	api.DELETE("/operations/feeding/:id", operationsHandler.DeleteFeeding)
	api.GET("/operations/mortality", operationsHandler.ListMortality)
	api.POST("/operations/mortality", operationsHandler.CreateMortality)
	api.GET("/operations/mortality/:id", operationsHandler.GetMortality)
	api.PUT("/operations/mortality/:id", operationsHandler.UpdateMortality)
	api.DELETE("/operations/mortality/:id", operationsHandler.DeleteMortality)
	api.GET("/operations/batch-stats/:batchId", operationsHandler.BatchStats)

	accounting := api.Group("/accounting", accountingGate)
	accounting.GET("/accounts", accountingHandler.Accounts)
	accounting.GET("/accounts/:id", accountingHandler.Account)
	accounting.GET("/journal-entries", accountingHandler.JournalEntries)
	accounting.POST("/journal-entries", accountingHandler.CreateJournalEntry)
	accounting.GET("/journal-entries/:id", accountingHandler.JournalEntry)
	accounting.GET("/trial-balance", accountingHandler.TrialBalance)
	accounting.GET("/balance-sheet", accountingHandler.BalanceSheet)
	accounting.GET("/biological-asset-revaluations", accountingHandler.Revaluations)
	accounting.GET("/biological-asset-revaluations/:id", accountingHandler.Revaluation)

	sales := api.Group("/sales", salesGate)
	sales.GET("/harvests", salesHandler.Harvests)
	sales.POST("/harvests", salesHandler.CreateHarvest)
	sales.GET("/sales-orders", salesHandler.SalesOrders)
	sales.POST("/sales-orders", salesHandler.CreateSalesOrder)
	sales.GET("/invoices", salesHandler.Invoices)
	sales.POST("/invoices", salesHandler.CreateInvoice)
	sales.GET("/invoices/:id/pdf", salesHandler.InvoicePDF)

	traceability := api.Group("/traceability", salesGate)
	traceability.GET("/by-invoice/:id", salesHandler.TraceabilityByInvoice)
	traceability.GET("/by-batch/:id", salesHandler.TraceabilityByBatch)

	reports := api.Group("/reports", reportsGate)
	reports.GET("/cost-per-kg", reportsHandler.CostPerKg)
	reports.GET("/batch-profitability", reportsHandler.BatchProfitability)
	reports.GET("/feed-efficiency", reportsHandler.FeedEfficiency)
	reports.GET("/mortality-analysis", reportsHandler.MortalityAnalysis)

	audit := api.Group("/audit", accountingGate)
	audit.GET("/logs", auditHandler.List)
	audit.GET("/logs/:id", auditHandler.Get)

	api.GET("/billing/subscription", billingHandler.Subscription)
	api.GET("/billing/usage", billingHandler.Usage)
	api.GET("/billing/invoices", billingHandler.Invoices)
	api.POST("/billing/upgrade", billingHandler.Upgrade)

	saas := api.Group("/saas")
	saas.GET("/stats", saasHandler.Stats)
	saas.GET("/tenants", saasHandler.Tenants)
	saas.GET("/plans", saasHandler.Plans)
	saas.POST("/tenants/create", saasHandler.CreateTenant)
	saas.POST("/tenants/:id/suspend", saasHandler.SuspendTenant)
	saas.POST("/tenants/:id/activate", saasHandler.ActivateTenant)
	saas.POST("/tenants/:id/impersonate", saasHandler.ImpersonateTenant)

	api.GET("/farm", farmHandler.Info)
	api.PUT("/farm", farmHandler.UpdateInfo)
	api.GET("/users", farmHandler.Users)
	api.POST("/users", farmHandler.CreateUser)
	api.PUT("/users/:id", farmHandler.UpdateUser)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Redis, deps.Upstream)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
