package usecase

import (
	"context"
	"net/http"
	"time"

	"glance/internal/domain/model"
	repo "glance/internal/repository"
)

// FavouriteUsecase は /favourites の業務ロジック。
type FavouriteUsecase struct {
	favouriteRepo repo.FavouriteRepository
	userRepo      repo.UserRepository
	productRepo   repo.ProductRepository
}

// DI
func NewFavouriteUsecase(
	favouriteRepo repo.FavouriteRepository,
	userRepo repo.UserRepository,
	productRepo repo.ProductRepository,
) *FavouriteUsecase {
	return &FavouriteUsecase{
		favouriteRepo: favouriteRepo,
		userRepo:      userRepo,
		productRepo:   productRepo,
	}
}

// POST /favourites の入力DTO
type AddFavouriteInput struct {
	UserID    int64
	ProductID int64
}

// 商品名・価格を埋め込んだお気に入りビュー
type FavouriteResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	ProductID    int64     `json:"product_id"`
	AddedAt      time.Time `json:"added_at"`
	ProductName  string    `json:"product_name"`
	ProductPrice int64     `json:"product_price"`
}

// お気に入り登録。同じ(user, product)は409
func (u *FavouriteUsecase) AddFavourite(ctx context.Context, in AddFavouriteInput) (FavouriteResponse, error) {
	if in.UserID <= 0 {
		return FavouriteResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if in.ProductID <= 0 {
		return FavouriteResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if _, err := u.userRepo.FindByID(ctx, in.UserID); err != nil {
		if err == repo.ErrNotFound {
			return FavouriteResponse{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return FavouriteResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return FavouriteResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return FavouriteResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	f, err := u.favouriteRepo.Create(ctx, model.Favourite{
		UserID:    in.UserID,
		ProductID: in.ProductID,
	})
	if err == repo.ErrConflict {
		return FavouriteResponse{}, NewHTTPError(http.StatusConflict, "already in favourites")
	}
	if err != nil {
		return FavouriteResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return FavouriteResponse{
		ID:           f.ID,
		UserID:       f.UserID,
		ProductID:    f.ProductID,
		AddedAt:      f.AddedAt,
		ProductName:  p.Name,
		ProductPrice: p.Price,
	}, nil
}

// ユーザーのお気に入り一覧
func (u *FavouriteUsecase) ListFavourites(ctx context.Context, userID int64) ([]FavouriteResponse, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if _, err := u.userRepo.FindByID(ctx, userID); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewHTTPError(http.StatusNotFound, "not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	favourites, err := u.favouriteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]FavouriteResponse, 0, len(favourites))
	for _, f := range favourites {
		p, err := u.productRepo.FindByID(ctx, f.ProductID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = append(out, FavouriteResponse{
			ID:           f.ID,
			UserID:       f.UserID,
			ProductID:    f.ProductID,
			AddedAt:      f.AddedAt,
			ProductName:  p.Name,
			ProductPrice: p.Price,
		})
	}
	return out, nil
}

// お気に入り削除
func (u *FavouriteUsecase) DeleteFavourite(ctx context.Context, favouriteID int64) (MessageOutput, error) {
	if favouriteID <= 0 {
		return MessageOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.favouriteRepo.DeleteByID(ctx, favouriteID)
	if err == repo.ErrNotFound {
		return MessageOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return MessageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MessageOutput{Message: "Favourite deleted successfully"}, nil
}
