package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

type AuditAPI interface {
	AuditLogs(ctx context.Context, filter domain.AuditLogFilter) ([]domain.AuditLog, error)
	AuditLog(ctx context.Context, id int64) (*domain.AuditLog, error)
}

type AuditHandler struct {
	api AuditAPI
}

func NewAuditHandler(api AuditAPI) *AuditHandler {
	return &AuditHandler{api: api}
}

func (h *AuditHandler) List(c echo.Context) error {
	userID, _ := strconv.ParseInt(c.QueryParam("user_id"), 10, 64)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	logs, err := h.api.AuditLogs(c.Request().Context(), domain.AuditLogFilter{
		ActionType: c.QueryParam("action_type"),
		EntityType: c.QueryParam("entity_type"),
		UserID:     userID,
		DateFrom:   c.QueryParam("start_date"),
		DateTo:     c.QueryParam("end_date"),
		Limit:      limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *AuditHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	log, err := h.api.AuditLog(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, log)
}
