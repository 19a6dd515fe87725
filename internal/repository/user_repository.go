package repository

import (
	"context"

	"glance/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByLogin(ctx context.Context, login string) (model.User, error)
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id int64) error
}
