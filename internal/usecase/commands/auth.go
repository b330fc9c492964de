package commands

import (
	"context"
	"log/slog"
	"time"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/pkg/clock"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/pkg/password"
	"gin-storefront/internal/usecase/queries"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	User        *queries.AuthorizedUserView
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore queries.UserReadStore
	users     UserRepository
	tokens    TokenIssuer
	clock     clock.Clock
}

func NewAuthCommands(readStore queries.UserReadStore, users UserRepository, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		readStore: readStore,
		users:     users,
		tokens:    tokens,
		clock:     clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.tokens.GenerateAccessToken(userReadModel.ID, userReadModel.Email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	if updateErr := a.users.UpdateLastLogin(ctx, userReadModel.ID, now); updateErr != nil {
		// login already succeeded; last_login is informational
		slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", updateErr.Error())
	} else {
		userReadModel.LastLogin = &now
	}

	return &LoginResult{
		User:        userReadModel,
		AccessToken: accessToken,
		ExpiresIn:   a.tokens.AccessTokenDuration(),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || userReadModel == nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		password.EqualizeTiming(credentials.Password().Value())
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	return userReadModel, nil
}
