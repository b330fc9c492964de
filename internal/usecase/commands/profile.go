package commands

import (
	"context"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/infra"
	"gin-storefront/internal/pkg/errs"
)

var (
	ErrNameRequired    = errs.New("name is required")
	ErrNameTooLong     = errs.New("name too long")
	ErrProfileNotFound = errs.New("user not found")
)

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, identity *user.Identity, name string) (*UserSnapshot, error)
}

type profileCommandsImpl struct {
	users UserRepository
}

func NewProfileCommands(users UserRepository) ProfileCommands {
	return &profileCommandsImpl{users: users}
}

// UpdateProfile renames the user matched by the identity's email.
func (p *profileCommandsImpl) UpdateProfile(ctx context.Context, identity *user.Identity, name string) (*UserSnapshot, error) {
	displayName, err := user.NewDisplayName(name)
	if err != nil {
		switch {
		case errs.Is(err, user.ErrEmptyName):
			return nil, errs.Mark(err, ErrNameRequired)
		case errs.Is(err, user.ErrNameTooLong):
			return nil, errs.Mark(err, ErrNameTooLong)
		}
		return nil, err
	}

	updated, err := p.users.UpdateNameByEmail(ctx, identity.Email, displayName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return updated, nil
}
