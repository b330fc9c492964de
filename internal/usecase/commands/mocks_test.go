//go:build unit

package commands_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/usecase/commands"
	"gin-storefront/internal/usecase/queries"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpdateNameByEmail(ctx context.Context, email string, name user.DisplayName) (*commands.UserSnapshot, error) {
	args := m.Called(ctx, email, name)
	s, _ := args.Get(0).(*commands.UserSnapshot)
	return s, args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.AuthorizedUserView)
	return v, args.Error(1)
}

func (m *MockUserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, email)
	v, _ := args.Get(0).(*queries.AuthorizedUserView)
	return v, args.String(1), args.Error(2)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateAccessToken(userID uuid.UUID, email string, role user.Role) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) AccessTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}
