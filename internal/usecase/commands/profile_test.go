//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/infra"
	"gin-storefront/internal/usecase/commands"
	"gin-storefront/tests/common/builder"
)

func TestProfileCommands_UpdateProfile(t *testing.T) {
	u := builder.NewUserBuilder()
	identity := u.BuildIdentity()

	t.Run("trims and stores the new name", func(t *testing.T) {
		repo := new(MockUserRepository)
		want := u.With(func(b *builder.UserBuilder) { b.Name = "Hanako" }).BuildSnapshot()
		repo.On("UpdateNameByEmail", mock.Anything, identity.Email, mock.MatchedBy(func(n user.DisplayName) bool {
			return n.Value() == "Hanako"
		})).Return(want, nil)

		got, err := commands.NewProfileCommands(repo).UpdateProfile(context.Background(), identity, "  Hanako  ")

		require.NoError(t, err)
		assert.Equal(t, want, got)
		repo.AssertExpectations(t)
	})

	t.Run("whitespace name never reaches the store", func(t *testing.T) {
		repo := new(MockUserRepository)

		_, err := commands.NewProfileCommands(repo).UpdateProfile(context.Background(), identity, " \t ")

		assert.ErrorIs(t, err, commands.ErrNameRequired)
		repo.AssertNotCalled(t, "UpdateNameByEmail", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("too long", func(t *testing.T) {
		repo := new(MockUserRepository)

		_, err := commands.NewProfileCommands(repo).UpdateProfile(context.Background(), identity, strings.Repeat("x", 101))

		assert.ErrorIs(t, err, commands.ErrNameTooLong)
	})

	t.Run("no matching row", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UpdateNameByEmail", mock.Anything, identity.Email, mock.Anything).
			Return(nil, infra.WrapRepoErr("user not found", errors.New("0 rows"), infra.KindNotFound))

		_, err := commands.NewProfileCommands(repo).UpdateProfile(context.Background(), identity, "Hanako")

		assert.ErrorIs(t, err, commands.ErrProfileNotFound)
	})

	t.Run("store failure passes through", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UpdateNameByEmail", mock.Anything, identity.Email, mock.Anything).
			Return(nil, infra.WrapRepoErr("update failed", errors.New("connection reset")))

		_, err := commands.NewProfileCommands(repo).UpdateProfile(context.Background(), identity, "Hanako")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
