package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
)

type InventoryAPI interface {
	FeedTypes(ctx context.Context) ([]domain.FeedType, error)
	FeedInventory(ctx context.Context) ([]domain.FeedInventory, error)
	FeedInventoryItem(ctx context.Context, id int64) (*domain.FeedInventory, error)
	CreateFeedInventory(ctx context.Context, in *domain.FeedInventoryInput) (*domain.FeedInventory, error)
	UpdateFeedInventory(ctx context.Context, id int64, in *domain.FeedInventoryInput) (*domain.FeedInventory, error)
	DeleteFeedInventory(ctx context.Context, id int64) error

	Medicines(ctx context.Context) ([]domain.Medicine, error)
	MedicineInventory(ctx context.Context) ([]domain.MedicineInventory, error)
	MedicineInventoryItem(ctx context.Context, id int64) (*domain.MedicineInventory, error)
	CreateMedicineInventory(ctx context.Context, in *domain.MedicineInventoryInput) (*domain.MedicineInventory, error)
	UpdateMedicineInventory(ctx context.Context, id int64, in *domain.MedicineInventoryInput) (*domain.MedicineInventory, error)
	DeleteMedicineInventory(ctx context.Context, id int64) error
}

type InventoryHandler struct {
	api      InventoryAPI
	feedback ports.FeedbackService
}

func NewInventoryHandler(api InventoryAPI, feedback ports.FeedbackService) *InventoryHandler {
	return &InventoryHandler{api: api, feedback: feedback}
}

func (h *InventoryHandler) FeedTypes(c echo.Context) error {
	types, err := h.api.FeedTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

func (h *InventoryHandler) ListFeeds(c echo.Context) error {
	feeds, err := h.api.FeedInventory(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feeds)
}

func (h *InventoryHandler) GetFeed(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	feed, err := h.api.FeedInventoryItem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feed)
}

func (h *InventoryHandler) CreateFeed(c echo.Context) error {
	var in domain.FeedInventoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var feed *domain.FeedInventory
	err := track(c, h.feedback, "Saving feed stock", func() error {
		var err error
		feed, err = h.api.CreateFeedInventory(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Feed stock added")
	return c.JSON(http.StatusCreated, feed)
}

func (h *InventoryHandler) UpdateFeed(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in domain.FeedInventoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var feed *domain.FeedInventory
	err = track(c, h.feedback, "Saving feed stock", func() error {
		var err error
		feed, err = h.api.UpdateFeedInventory(c.Request().Context(), id, &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Feed stock updated")
	return c.JSON(http.StatusOK, feed)
}

func (h *InventoryHandler) DeleteFeed(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	err = track(c, h.feedback, "Deleting feed stock", func() error {
		return h.api.DeleteFeedInventory(c.Request().Context(), id)
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Feed stock deleted")
	return c.NoContent(http.StatusNoContent)
}

func (h *InventoryHandler) MedicineTypes(c echo.Context) error {
	types, err := h.api.Medicines(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

func (h *InventoryHandler) ListMedicines(c echo.Context) error {
	medicines, err := h.api.MedicineInventory(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, medicines)
}

func (h *InventoryHandler) GetMedicine(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	medicine, err := h.api.MedicineInventoryItem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, medicine)
}

func (h *InventoryHandler) CreateMedicine(c echo.Context) error {
	var in domain.MedicineInventoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var medicine *domain.MedicineInventory
	err := track(c, h.feedback, "Saving medicine stock", func() error {
		var err error
		medicine, err = h.api.CreateMedicineInventory(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Medicine stock added")
	return c.JSON(http.StatusCreated, medicine)
}

func (h *InventoryHandler) UpdateMedicine(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in domain.MedicineInventoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var medicine *domain.MedicineInventory
	err = track(c, h.feedback, "Saving medicine stock", func() error {
		var err error
		medicine, err = h.api.UpdateMedicineInventory(c.Request().Context(), id, &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Medicine stock updated")
	return c.JSON(http.StatusOK, medicine)
}

func (h *InventoryHandler) DeleteMedicine(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	err = track(c, h.feedback, "Deleting medicine stock", func() error {
		return h.api.DeleteMedicineInventory(c.Request().Context(), id)
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Medicine stock deleted")
	return c.NoContent(http.StatusNoContent)
}
