package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"deskhub/domain/dto"
	"deskhub/interfaces/api/middleware"
)

type stubAuthService struct{}

func (stubAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{}, nil
}

func (stubAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.UserResponse, string, error) {
	return &dto.UserResponse{Email: "ana@example.com"}, "session-token", nil
}

func (stubAuthService) Logout(_ context.Context, _ string) error { return nil }

func (stubAuthService) CurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return &dto.UserResponse{}, nil
}

func loginCookie(t *testing.T, ttl time.Duration) *http.Cookie {
	t.Helper()

	app := fiber.New()
	h := NewAuthHandler(stubAuthService{}, ttl)
	app.Post("/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"ana@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLoginCookieLifetimeFollowsSessionTTL(t *testing.T) {
	ttl := 168 * time.Hour
	cookie := loginCookie(t, ttl)

	want := time.Now().Add(ttl)
	if diff := cookie.Expires.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("cookie expires %v, want about %v", cookie.Expires, want)
	}
}

func TestLoginCookieLifetimeDefault(t *testing.T) {
	cookie := loginCookie(t, 0)

	want := time.Now().Add(168 * time.Hour)
	if diff := cookie.Expires.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("cookie expires %v, want about %v", cookie.Expires, want)
	}
}
