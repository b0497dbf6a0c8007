package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/ports"
)

type FarmAPI interface {
	FarmInfo(ctx context.Context) (*domain.FarmInfo, error)
	UpdateFarmInfo(ctx context.Context, in *domain.FarmInfoInput) (*domain.FarmInfo, error)
	Users(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, in *domain.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, in *domain.UpdateUserInput) (*domain.User, error)
}

type FarmHandler struct {
	api      FarmAPI
	feedback ports.FeedbackService
	sessions ports.SessionService
}

func NewFarmHandler(api FarmAPI, feedback ports.FeedbackService, sessions ports.SessionService) *FarmHandler {
	return &FarmHandler{api: api, feedback: feedback, sessions: sessions}
}

func (h *FarmHandler) Info(c echo.Context) error {
	info, err := h.api.FarmInfo(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

func (h *FarmHandler) UpdateInfo(c echo.Context) error {
	var in domain.FarmInfoInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var info *domain.FarmInfo
	err := track(c, h.feedback, "Saving farm settings", func() error {
		var err error
		info, err = h.api.UpdateFarmInfo(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "Farm settings saved")
	return c.JSON(http.StatusOK, info)
}

func (h *FarmHandler) Users(c echo.Context) error {
	users, err := h.api.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *FarmHandler) CreateUser(c echo.Context) error {
	var in domain.CreateUserInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var user *domain.User
	err := track(c, h.feedback, "Creating user", func() error {
		var err error
		user, err = h.api.CreateUser(c.Request().Context(), &in)
		return err
	})
	if err != nil {
		return err
	}
	notify(c, h.feedback, "User created")
	return c.JSON(http.StatusCreated, user)
}

func (h *FarmHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in domain.UpdateUserInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	var user *domain.User
	err = track(c, h.feedback, "Saving user", func() error {
		var err error
		user, err = h.api.UpdateUser(c.Request().Context(), id, &in)
		return err
	})
	if err != nil {
		return err
	}

	// Editing your own account changes the profile the session cache
	// serves, including the role behind feature gates. Refresh it so
	// the change takes effect without a re-login.
	if s := domain.SessionFrom(c.Request().Context()); s != nil && s.User != nil && s.User.ID == id {
		if err := h.sessions.SetUser(c.Request().Context(), s.ID, user); err != nil {
			return err
		}
	}

	notify(c, h.feedback, "User updated")
	return c.JSON(http.StatusOK, user)
}
