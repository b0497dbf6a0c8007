package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
)

type BatchAPI interface {
	Batches(ctx context.Context) ([]domain.Batch, error)
	Batch(ctx context.Context, id int64) (*domain.Batch, error)
	CreateBatch(ctx context.Context, in *domain.BatchInput) (*domain.Batch, error)
	UpdateBatch(ctx context.Context, id int64, in *domain.BatchInput) (*domain.Batch, error)
	DeleteBatch(ctx context.Context, id int64) error
}

type BatchHandler struct {
	api      BatchAPI
	feedback ports.FeedbackService
}

func NewBatchHandler(api BatchAPI, feedback ports.FeedbackService) *BatchHandler {
	return &BatchHandler{api: api, feedback: feedback}
}

func (h *BatchHandler) List(c echo.Context) error {
	batches, err := h.api.Batches(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, batches)
}

func (h *BatchHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	batch, err := h.api.Batch(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, batch)
}

func (h *BatchHandler) Create(c echo.Context) error {
	var in domain.BatchInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var batch *domain.Batch
	err := track(c, h.feedback, "Saving batch", func() error {
		var err error
		batch, err = h.api.CreateBatch(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Batch created")
	return c.JSON(http.StatusCreated, batch)
}

func (h *BatchHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in domain.BatchInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var batch *domain.Batch
	err = track(c, h.feedback, "Saving batch", func() error {
		var err error
		batch, err = h.api.UpdateBatch(c.Request().Context(), id, &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Batch updated")
	return c.JSON(http.StatusOK, batch)
}

func (h *BatchHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	err = track(c, h.feedback, "Deleting batch", func() error {
		return h.api.DeleteBatch(c.Request().Context(), id)
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Batch deleted")
	return c.NoContent(http.StatusNoContent)
}
