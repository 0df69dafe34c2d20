package auth

import (
	"context"
	"errors"
	"time"

	"github.com/catalogbase/catalog-api/internal/users"
	pkgauth "github.com/catalogbase/catalog-api/pkg/auth"
	"github.com/catalogbase/catalog-api/pkg/config"
	"github.com/catalogbase/catalog-api/pkg/db"
	pkgerrors "github.com/catalogbase/catalog-api/pkg/errors"
	"github.com/catalogbase/catalog-api/pkg/logger"
	"github.com/catalogbase/catalog-api/pkg/security"
	"gorm.io/gorm"
)

const tokenTypeBearer = "bearer"

// Service implements account registration and login.
type Service struct {
	db          *db.Client
	jwtConfig   config.JWTConfig
	passwordCfg config.PasswordConfig
	logg        *logger.Logger
	now         func() time.Time
}

// NewService wires the auth service with its storage client and crypto config.
func NewService(client *db.Client, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig, logg *logger.Logger) *Service {
	return &Service{
		db:          client,
		jwtConfig:   jwtCfg,
		passwordCfg: pwCfg,
		logg:        logg,
		now:         time.Now,
	}
}

// Login verifies the credentials and mints a bearer access token. An unknown
// email and a wrong password are reported as distinct failures.
func (s *Service) Login(ctx context.Context, dto LoginDTO) (*TokenDTO, error) {
	repo := users.NewRepository(s.db.DB())

	user, err := repo.FindByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no user registered with this email")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load user")
	}

	match, err := security.VerifyPassword(dto.Password, user.HashedPassword)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to verify password")
	}
	if !match {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "incorrect password")
	}

	token, err := pkgauth.MintAccessToken(s.jwtConfig, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to mint access token")
	}

	s.logg.Info(s.logg.WithUserID(ctx, user.Email), "user logged in")

	return &TokenDTO{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
	}, nil
}
