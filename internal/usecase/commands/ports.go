package commands

//go:generate mockgen -destination=../../../tests/mock/commands/commands.go -package=commandsmock gin-storefront/internal/usecase/commands AuthCommands,ProfileCommands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gin-storefront/internal/domain/user"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type UserSnapshot struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// UserRepository only touches the columns owned by user commands.
type UserRepository interface {
	UpdateNameByEmail(ctx context.Context, email string, name user.DisplayName) (*UserSnapshot, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, email string, role user.Role) (string, error)
	AccessTokenDuration() time.Duration
}
