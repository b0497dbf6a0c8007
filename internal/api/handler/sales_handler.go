package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
	"github.com/tidesight2026/tidesight/internal/infrastructure/upstream"
)

type SalesAPI interface {
	Harvests(ctx context.Context, filter upstream.HarvestFilter) ([]domain.Harvest, error)
	CreateHarvest(ctx context.Context, in *domain.HarvestInput) (*domain.Harvest, error)
	SalesOrders(ctx context.Context, status string) ([]domain.SalesOrder, error)
	CreateSalesOrder(ctx context.Context, in *domain.SalesOrderInput) (*domain.SalesOrder, error)
	Invoices(ctx context.Context, status string) ([]domain.Invoice, error)
	CreateInvoice(ctx context.Context, salesOrderID int64) (*domain.Invoice, error)
	InvoicePDF(ctx context.Context, invoiceID int64) ([]byte, error)
	TraceabilityByInvoice(ctx context.Context, invoiceID int64) (json.RawMessage, error)
	TraceabilityByBatch(ctx context.Context, batchID int64) (json.RawMessage, error)
}

type SalesHandler struct {
	api      SalesAPI
	feedback ports.FeedbackService
}

func NewSalesHandler(api SalesAPI, feedback ports.FeedbackService) *SalesHandler {
	return &SalesHandler{api: api, feedback: feedback}
}

func (h *SalesHandler) Harvests(c echo.Context) error {
	batchID, _ := strconv.ParseInt(c.QueryParam("batch_id"), 10, 64)
	harvests, err := h.api.Harvests(c.Request().Context(), upstream.HarvestFilter{
		BatchID: batchID,
		Status:  c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, harvests)
}

func (h *SalesHandler) CreateHarvest(c echo.Context) error {
	var in domain.HarvestInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var harvest *domain.Harvest
	err := track(c, h.feedback, "Recording harvest", func() error {
		var err error
		harvest, err = h.api.CreateHarvest(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Harvest recorded")
	return c.JSON(http.StatusCreated, harvest)
}

func (h *SalesHandler) SalesOrders(c echo.Context) error {
	orders, err := h.api.SalesOrders(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *SalesHandler) CreateSalesOrder(c echo.Context) error {
	var in domain.SalesOrderInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var order *domain.SalesOrder
	err := track(c, h.feedback, "Creating sales order", func() error {
		var err error
		order, err = h.api.CreateSalesOrder(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Sales order created")
	return c.JSON(http.StatusCreated, order)
}

func (h *SalesHandler) Invoices(c echo.Context) error {
	invoices, err := h.api.Invoices(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

type createInvoiceRequest struct {
	SalesOrderID int64 `json:"sales_order_id" validate:"required,gt=0"`
}

func (h *SalesHandler) CreateInvoice(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var invoice *domain.Invoice
	err := track(c, h.feedback, "Issuing invoice", func() error {
		var err error
		invoice, err = h.api.CreateInvoice(c.Request().Context(), req.SalesOrderID)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Invoice issued")
	return c.JSON(http.StatusCreated, invoice)
}

// InvoicePDF streams the rendered invoice to the browser for download.
func (h *SalesHandler) InvoicePDF(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	pdf, err := h.api.InvoicePDF(c.Request().Context(), id)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=invoice-%d.pdf", id))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func (h *SalesHandler) TraceabilityByInvoice(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	chain, err := h.api.TraceabilityByInvoice(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, chain)
}

func (h *SalesHandler) TraceabilityByBatch(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	chain, err := h.api.TraceabilityByBatch(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, chain)
}
