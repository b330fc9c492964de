//go:build unit || e2e

package builder

import (
	"time"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/usecase/commands"
	"gin-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Name:     "Test User",
		Role:     "user",
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildIdentity() *user.Identity {
	return &user.Identity{
		ID:    u.ID,
		Email: u.Email,
		Role:  user.Role(u.Role),
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	lastLogin := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: &lastLogin,
	}
}

func (u *UserBuilder) BuildSnapshot() *commands.UserSnapshot {
	return &commands.UserSnapshot{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
