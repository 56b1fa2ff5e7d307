package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/velkart/commerce-api/internal/core/domain"
	"github.com/velkart/commerce-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	forgotFn   func(ctx context.Context, input ports.ForgotPasswordInput) error
	updateFn   func(ctx context.Context, input ports.UpdateProfileInput) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, input ports.ForgotPasswordInput) error {
	return s.forgotFn(ctx, input)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateFn(ctx, input)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Name != "Alice" || input.RecoveryKey != "blue" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{
				ID:           "u1",
				Name:         input.Name,
				Email:        input.Email,
				PasswordHash: "bcrypt-hash",
				RecoveryKey:  input.RecoveryKey,
				Role:         domain.RoleRegular,
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := `{"name":"Alice","email":"a@example.com","password":"s3cret1","phone":"555-0100","address":"1 Main St","answer":"blue"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	raw := rec.Body.String()
	if strings.Contains(raw, "bcrypt-hash") || strings.Contains(raw, "blue") {
		t.Fatalf("secret leaked in response: %s", raw)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success=true: %v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Alice" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	// email omitted
	body := `{"name":"Alice","password":"s3cret1","phone":"555-0100","address":"1 Main St","answer":"blue"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if msg, _ := he.Message.(string); !strings.Contains(msg, "email") {
		t.Fatalf("expected message naming the email field, got %v", he.Message)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	body := `{"name":"Alice","email":"a@example.com","password":"s3cret1","phone":"555-0100","address":"1 Main St","answer":"blue"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{
				Token: "signed-token",
				User: &domain.User{
					ID:           "u1",
					Name:         "Alice",
					Email:        email,
					PasswordHash: "bcrypt-hash",
					RecoveryKey:  "blue",
					Phone:        "555-0100",
					Address:      "1 Main St",
					Role:         domain.RoleRegular,
				},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"s3cret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	raw := rec.Body.String()
	if strings.Contains(raw, "bcrypt-hash") || strings.Contains(raw, "blue") {
		t.Fatalf("secret leaked in response: %s", raw)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["token"] != "signed-token" {
		t.Fatalf("expected token in response: %v", resp)
	}
	user, _ := resp["user"].(map[string]any)
	if user["name"] != "Alice" || user["role"] != domain.RoleRegular {
		t.Fatalf("unexpected user projection: %+v", user)
	}
	if _, present := user["id"]; present {
		t.Fatalf("login projection must not carry the id")
	}
}

func TestAuthHandler_Login_MissingCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.LoginResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@example.com"}`)

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if msg, _ := he.Message.(string); msg != "invalid email or password" {
		t.Fatalf("expected combined message, got %v", he.Message)
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.LoginResult, error) {
			return nil, domain.ErrWrongPassword
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"bad"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("wrong password must not be an HTTP error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["success"] != false {
		t.Fatalf("expected success=false: %v", resp)
	}
	if _, present := resp["token"]; present {
		t.Fatalf("no token may be issued on wrong password")
	}
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.LoginResult, error) {
			return nil, domain.ErrUserNotFound
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"ghost@example.com","password":"pass"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestAuthHandler_ForgotPassword_Success(t *testing.T) {
	var got ports.ForgotPasswordInput
	h := NewAuthHandler(&stubAuthService{
		forgotFn: func(_ context.Context, input ports.ForgotPasswordInput) error {
			got = input
			return nil
		},
	})

	body := `{"email":"a@example.com","answer":"blue","newPassword":"fresh-pass"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/forgot-password", body)

	if err := h.ForgotPassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Email != "a@example.com" || got.RecoveryKey != "blue" || got.NewPassword != "fresh-pass" {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestAuthHandler_ForgotPassword_MissingNewPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		forgotFn: func(_ context.Context, _ ports.ForgotPasswordInput) error {
			t.Fatalf("service should not be called")
			return nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/forgot-password", `{"email":"a@example.com","answer":"blue"}`)

	err := h.ForgotPassword(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if msg, _ := he.Message.(string); !strings.Contains(msg, "newpassword") {
		t.Fatalf("expected message naming newPassword, got %v", he.Message)
	}
}

func TestAuthHandler_UpdateProfile_RequiresIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPut, "/api/auth/profile", `{"name":"Alice B."}`)

	err := h.UpdateProfile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_UpdateProfile_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		updateFn: func(_ context.Context, input ports.UpdateProfileInput) (*domain.User, error) {
			if input.UserID != "u1" || input.Name != "Alice B." || input.Password != "" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u1", Name: input.Name}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPut, "/api/auth/profile", `{"name":"Alice B."}`)
	c.Set("user_id", "u1")

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	updated, _ := resp["updatedUser"].(map[string]any)
	if updated["name"] != "Alice B." {
		t.Fatalf("unexpected updatedUser: %+v", resp)
	}
}
