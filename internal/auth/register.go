package auth

import (
	"context"
	"errors"

	"github.com/catalogbase/catalog-api/internal/users"
	"github.com/catalogbase/catalog-api/pkg/db"
	pkgerrors "github.com/catalogbase/catalog-api/pkg/errors"
	"github.com/catalogbase/catalog-api/pkg/security"
	"gorm.io/gorm"
)

// Register creates a new account. The duplicate check and the insert share a
// transaction; a concurrent insert that still slips through surfaces as a
// unique violation and is reported the same way as a duplicate.
func (s *Service) Register(ctx context.Context, dto RegisterDTO) (*users.UserDTO, error) {
	hashed, err := security.HashPassword(dto.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to hash password")
	}

	var created *users.UserDTO
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := users.NewRepository(tx)

		_, err := repo.FindByEmail(ctx, dto.Email)
		if err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to check existing email")
		}

		user, err := repo.Create(ctx, users.CreateUserDTO{
			Email:          dto.Email,
			HashedPassword: hashed,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "idx_users_email") {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create user")
		}

		created = users.FromModel(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithUserID(ctx, created.Email), "user registered")
	return created, nil
}
