package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
)

type OperationsAPI interface {
	FeedingLogs(ctx context.Context, batchID int64) ([]domain.FeedingLog, error)
	FeedingLog(ctx context.Context, id int64) (*domain.FeedingLog, error)
	CreateFeedingLog(ctx context.Context, in *domain.FeedingLogInput) (*domain.FeedingLog, error)
	UpdateFeedingLog(ctx context.Context, id int64, in *domain.FeedingLogInput) (*domain.FeedingLog, error)
	DeleteFeedingLog(ctx context.Context, id int64) error

	MortalityLogs(ctx context.Context, batchID int64) ([]domain.MortalityLog, error)
	MortalityLog(ctx context.Context, id int64) (*domain.MortalityLog, error)
	CreateMortalityLog(ctx context.Context, in *domain.MortalityLogInput) (*domain.MortalityLog, error)
	UpdateMortalityLog(ctx context.Context, id int64, in *domain.MortalityLogInput) (*domain.MortalityLog, error)
	DeleteMortalityLog(ctx context.Context, id int64) error

	BatchStatistics(ctx context.Context, batchID int64) (*domain.BatchStatistics, error)
}

type OperationsHandler struct {
	api      OperationsAPI
	feedback ports.FeedbackService
}

func NewOperationsHandler(api OperationsAPI, feedback ports.FeedbackService) *OperationsHandler {
	return &OperationsHandler{api: api, feedback: feedback}
}

// batchFilter reads the optional batch_id query parameter; absent or
// malformed means unfiltered.
func batchFilter(c echo.Context) int64 {
	id, _ := strconv.ParseInt(c.QueryParam("batch_id"), 10, 64)
	return id
}

func (h *OperationsHandler) ListFeeding(c echo.Context) error {
	logs, err := h.api.FeedingLogs(c.Request().Context(), batchFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *OperationsHandler) GetFeeding(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	log, err := h.api.FeedingLog(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, log)
}

func (h *OperationsHandler) CreateFeeding(c echo.Context) error {
	var in domain.FeedingLogInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var log *domain.FeedingLog
	err := track(c, h.feedback, "Recording feeding", func() error {
		var err error
		log, err = h.api.CreateFeedingLog(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Feeding recorded")
	return c.JSON(http.StatusCreated, log)
}

func (h *OperationsHandler) UpdateFeeding(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in domain.FeedingLogInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var log *domain.FeedingLog
	err = track(c, h.feedback, "Saving feeding log", func() error {
		var err error
		log, err = h.api.UpdateFeedingLog(c.Request().Context(), id, &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Feeding log updated")
	return c.JSON(http.StatusOK, log)
}

func (h *OperationsHandler) DeleteFeeding(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	err = track(c, h.feedback, "Deleting feeding log", func() error {
		return h.api.DeleteFeedingLog(c.Request().Context(), id)
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Feeding log deleted")
	return c.NoContent(http.StatusNoContent)
}

func (h *OperationsHandler) ListMortality(c echo.Context) error {
	logs, err := h.api.MortalityLogs(c.Request().Context(), batchFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *OperationsHandler) GetMortality(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	log, err := h.api.MortalityLog(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, log)
}

func (h *OperationsHandler) CreateMortality(c echo.Context) error {
	var in domain.MortalityLogInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var log *domain.MortalityLog
	err := track(c, h.feedback, "Recording mortality", func() error {
		var err error
		log, err = h.api.CreateMortalityLog(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Mortality recorded")
	return c.JSON(http.StatusCreated, log)
}

func (h *OperationsHandler) UpdateMortality(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in domain.MortalityLogInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var log *domain.MortalityLog
	err = track(c, h.feedback, "Saving mortality log", func() error {
		var err error
		log, err = h.api.UpdateMortalityLog(c.Request().Context(), id, &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Mortality log updated")
	return c.JSON(http.StatusOK, log)
}

func (h *OperationsHandler) DeleteMortality(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	err = track(c, h.feedback, "Deleting mortality log", func() error {
		return h.api.DeleteMortalityLog(c.Request().Context(), id)
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Mortality log deleted")
	return c.NoContent(http.StatusNoContent)
}

func (h *OperationsHandler) BatchStats(c echo.Context) error {
	id, err := pathID(c, "batchId")
	if err != nil {
		return err
	}
	stats, err := h.api.BatchStatistics(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
