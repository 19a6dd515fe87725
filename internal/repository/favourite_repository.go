package repository

import (
	"context"

	"glance/internal/domain/model"
)

type FavouriteRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.Favourite, error)
	FindByID(ctx context.Context, favouriteID int64) (model.Favourite, error)
	Create(ctx context.Context, f model.Favourite) (model.Favourite, error)
	DeleteByID(ctx context.Context, favouriteID int64) error
	DeleteByUserID(ctx context.Context, userID int64) error
	DeleteByProductID(ctx context.Context, productID int64) error
}
