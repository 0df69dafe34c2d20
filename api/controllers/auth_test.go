package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/catalogbase/catalog-api/internal/auth"
	"github.com/catalogbase/catalog-api/internal/users"
	pkgerrors "github.com/catalogbase/catalog-api/pkg/errors"
)

type stubAuthService struct {
	registerFn func(context.Context, auth.RegisterDTO) (*users.UserDTO, error)
	loginFn    func(context.Context, auth.LoginDTO) (*auth.TokenDTO, error)
}

func (s *stubAuthService) Register(ctx context.Context, dto auth.RegisterDTO) (*users.UserDTO, error) {
	return s.registerFn(ctx, dto)
}

func (s *stubAuthService) Login(ctx context.Context, dto auth.LoginDTO) (*auth.TokenDTO, error) {
	return s.loginFn(ctx, dto)
}

func TestRegisterReturns201WithoutPassword(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, dto auth.RegisterDTO) (*users.UserDTO, error) {
			return &users.UserDTO{ID: 1, Email: dto.Email}, nil
		},
	}
	ctrl := NewAuthController(svc, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/register/", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
	ctrl.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["email"] != "a@b.com" {
		t.Fatalf("unexpected body %v", body)
	}
	for key := range body {
		if strings.Contains(key, "password") {
			t.Fatalf("response leaked credential field %q", key)
		}
	}
}

func TestRegisterDuplicateEmailIs400(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(context.Context, auth.RegisterDTO) (*users.UserDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		},
	}
	ctrl := NewAuthController(svc, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/register/", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
	ctrl.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(context.Context, auth.RegisterDTO) (*users.UserDTO, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	}
	ctrl := NewAuthController(svc, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/register/", strings.NewReader(`{"email":"not-an-email","password":"x"}`))
	ctrl.Register(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestTokenReturnsBearerToken(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, dto auth.LoginDTO) (*auth.TokenDTO, error) {
			return &auth.TokenDTO{AccessToken: "signed-token", TokenType: "bearer"}, nil
		},
	}
	ctrl := NewAuthController(svc, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/token", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
	ctrl.Token(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body auth.TokenDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.AccessToken != "signed-token" || body.TokenType != "bearer" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestTokenUnknownEmailIs404(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(context.Context, auth.LoginDTO) (*auth.TokenDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no user registered with this email")
		},
	}
	ctrl := NewAuthController(svc, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/token", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
	ctrl.Token(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTokenWrongPasswordIs401(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(context.Context, auth.LoginDTO) (*auth.TokenDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "incorrect password")
		},
	}
	ctrl := NewAuthController(svc, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/token", strings.NewReader(`{"email":"a@b.com","password":"wrong"}`))
	ctrl.Token(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
