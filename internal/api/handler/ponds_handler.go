package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
)

type PondAPI interface {
	Species(ctx context.Context) ([]domain.Species, error)
	Ponds(ctx context.Context) ([]domain.Pond, error)
	Pond(ctx context.Context, id int64) (*domain.Pond, error)
	CreatePond(ctx context.Context, in *domain.PondInput) (*domain.Pond, error)
	UpdatePond(ctx context.Context, id int64, in *domain.PondInput) (*domain.Pond, error)
	DeletePond(ctx context.Context, id int64) error
}

type PondHandler struct {
	api      PondAPI
	feedback ports.FeedbackService
}

func NewPondHandler(api PondAPI, feedback ports.FeedbackService) *PondHandler {
	return &PondHandler{api: api, feedback: feedback}
}

func (h *PondHandler) Species(c echo.Context) error {
	species, err := h.api.Species(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, species)
}

func (h *PondHandler) List(c echo.Context) error {
	ponds, err := h.api.Ponds(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ponds)
}

func (h *PondHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	pond, err := h.api.Pond(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pond)
}

func (h *PondHandler) Create(c echo.Context) error {
	var in domain.PondInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var pond *domain.Pond
	err := track(c, h.feedback, "Saving pond", func() error {
		var err error
		pond, err = h.api.CreatePond(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Pond created")
	return c.JSON(http.StatusCreated, pond)
}

func (h *PondHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in domain.PondInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var pond *domain.Pond
	err = track(c, h.feedback, "Saving pond", func() error {
		var err error
		pond, err = h.api.UpdatePond(c.Request().Context(), id, &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Pond updated")
	return c.JSON(http.StatusOK, pond)
}

func (h *PondHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	err = track(c, h.feedback, "Deleting pond", func() error {
		return h.api.DeletePond(c.Request().Context(), id)
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Pond deleted")
	return c.NoContent(http.StatusNoContent)
}
