package repository

import (
	"context"

	"glance/internal/domain/model"
)

type CartRepository interface {
	Create(ctx context.Context, c model.Cart) (model.Cart, error)
	FindByID(ctx context.Context, id int64) (model.Cart, error)
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)
	Delete(ctx context.Context, id int64) error
}
