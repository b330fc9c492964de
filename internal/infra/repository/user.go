package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/infra"
	"gin-storefront/internal/infra/model"
	"gin-storefront/internal/usecase/commands"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UpdateNameByEmail issues a single UPDATE ... RETURNING keyed by email.
func (r *UserRepository) UpdateNameByEmail(ctx context.Context, email string, name user.DisplayName) (*commands.UserSnapshot, error) {
	var rows []model.User
	res := r.db.WithContext(ctx).
		Model(&rows).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "email"}, {Name: "name"}}}).
		Where("email = ?", email).
		Update("name", name.Value())
	if res.Error != nil {
		return nil, infra.WrapRepoErr("failed to update user name", res.Error)
	}
	if res.RowsAffected == 0 || len(rows) == 0 {
		return nil, infra.WrapRepoErr("user not found", gorm.ErrRecordNotFound, infra.KindNotFound)
	}

	return &commands.UserSnapshot{
		ID:    rows[0].ID,
		Email: rows[0].Email,
		Name:  rows[0].Name,
	}, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", at)
	if res.Error != nil {
		return infra.WrapRepoErr("failed to update user last login", res.Error)
	}
	if res.RowsAffected == 0 {
		return infra.WrapRepoErr("user not found", gorm.ErrRecordNotFound, infra.KindNotFound)
	}
	return nil
}
