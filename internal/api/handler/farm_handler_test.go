package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/tidesight2026/tidesight/internal/core/domain"
)

type stubFarmAPI struct {
	updateUserFn func(ctx context.Context, id int64, in *domain.UpdateUserInput) (*domain.User, error)
}

func (s *stubFarmAPI) FarmInfo(context.Context) (*domain.FarmInfo, error) { return nil, nil }

func (s *stubFarmAPI) UpdateFarmInfo(context.Context, *domain.FarmInfoInput) (*domain.FarmInfo, error) {
	return nil, nil
}

func (s *stubFarmAPI) Users(context.Context) ([]domain.User, error) { return nil, nil }

func (s *stubFarmAPI) CreateUser(context.Context, *domain.CreateUserInput) (*domain.User, error) {
	return nil, nil
}

func (s *stubFarmAPI) UpdateUser(ctx context.Context, id int64, in *domain.UpdateUserInput) (*domain.User, error) {
	return s.updateUserFn(ctx, id, in)
}

func TestFarmHandler_UpdateUser_RefreshesOwnSession(t *testing.T) {
	e := newEcho()
	updated := &domain.User{ID: 1, Username: "omar", Role: "manager", FullName: "Omar N."}
	api := &stubFarmAPI{
		updateUserFn: func(ctx context.Context, id int64, in *domain.UpdateUserInput) (*domain.User, error) {
			return updated, nil
		},
	}
	var gotSessionID string
	var gotUser *domain.User
	sessions := &stubSessionService{
		setUserFn: func(ctx context.Context, sessionID string, u *domain.User) error {
			gotSessionID = sessionID
			gotUser = u
			return nil
		},
	}
	h := NewFarmHandler(api, &stubFeedback{}, sessions)

	c, rec := authedContext(e, http.MethodPut, "/api/users/1", `{"role":"manager"}`, testSession())
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.UpdateUser(c); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotSessionID != "s1" {
		t.Errorf("session id = %q, want s1", gotSessionID)
	}
	if gotUser != updated {
		t.Errorf("cached user = %+v, want the upstream result", gotUser)
	}
}

func TestFarmHandler_UpdateUser_OtherUserLeavesSessionAlone(t *testing.T) {
	e := newEcho()
	api := &stubFarmAPI{
		updateUserFn: func(ctx context.Context, id int64, in *domain.UpdateUserInput) (*domain.User, error) {
			return &domain.User{ID: id, Username: "lena", Role: "viewer"}, nil
		},
	}
	sessions := &stubSessionService{
		setUserFn: func(context.Context, string, *domain.User) error {
			t.Fatal("session cache refreshed for another user's update")
			return nil
		},
	}
	h := NewFarmHandler(api, &stubFeedback{}, sessions)

	c, rec := authedContext(e, http.MethodPut, "/api/users/7", `{"role":"viewer"}`, testSession())
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.UpdateUser(c); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
