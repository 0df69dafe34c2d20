package users

import (
	"github.com/catalogbase/catalog-api/pkg/db/models"
)

// UserDTO is the transport shape that omits credentials.
type UserDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
// HashedPassword must already be the Argon2id output.
type CreateUserDTO struct {
	Email          string
	HashedPassword string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:    u.ID,
		Email: u.Email,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Email:          c.Email,
		HashedPassword: c.HashedPassword,
	}
}
