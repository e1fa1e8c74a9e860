package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/brightline/tutoring-platform/internal/api/middleware"
	"github.com/brightline/tutoring-platform/internal/core/domain"
	"github.com/brightline/tutoring-platform/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Email != "jane@example.com" || in.Role != "student" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "user_1", Email: in.Email, Role: domain.RoleStudent, Active: true}, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	body := strings.NewReader(`{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","password":"correct-horse","role":"student"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_AdministratorRoleRejectedByValidation(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatal("service reached with administrator role")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	body := strings.NewReader(`{"first_name":"Eve","last_name":"Doe","email":"eve@example.com","password":"correct-horse","role":"administrator"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_SetsCookieAndRedirect(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{
				Token:      "signed-token",
				User:       &domain.User{ID: "user_1", Email: email, Role: domain.RoleParent, Active: true},
				RedirectTo: "/dashboards/parent",
			}, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	body := strings.NewReader(`{"email":"jane@example.com","password":"correct-horse"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect_to"] != "/dashboards/parent" {
		t.Fatalf("redirect_to = %v", resp["redirect_to"])
	}

	var sessionCookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil || sessionCookie.Value != "signed-token" {
		t.Fatalf("session cookie = %+v", sessionCookie)
	}
	if !sessionCookie.HttpOnly {
		t.Fatal("session cookie not HttpOnly")
	}
}
