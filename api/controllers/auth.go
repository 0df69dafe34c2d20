package controllers

import (
	"context"
	"net/http"

	"github.com/catalogbase/catalog-api/api/responses"
	"github.com/catalogbase/catalog-api/api/validators"
	"github.com/catalogbase/catalog-api/internal/auth"
	"github.com/catalogbase/catalog-api/internal/users"
	"github.com/catalogbase/catalog-api/pkg/logger"
)

// AuthService is the surface the auth controller depends on.
type AuthService interface {
	Register(ctx context.Context, dto auth.RegisterDTO) (*users.UserDTO, error)
	Login(ctx context.Context, dto auth.LoginDTO) (*auth.TokenDTO, error)
}

// AuthController handles registration and login.
type AuthController struct {
	svc  AuthService
	logg *logger.Logger
}

func NewAuthController(svc AuthService, logg *logger.Logger) *AuthController {
	return &AuthController{svc: svc, logg: logg}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /register/.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	user, err := c.svc.Register(r.Context(), auth.RegisterDTO{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	responses.WriteCreated(w, user)
}

// Token handles POST /token.
func (c *AuthController) Token(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	token, err := c.svc.Login(r.Context(), auth.LoginDTO{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		responses.WriteError(r.Context(), w, c.logg, err)
		return
	}

	responses.WriteSuccess(w, token)
}
