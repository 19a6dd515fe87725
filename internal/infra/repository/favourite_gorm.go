package repository

import (
	"context"
	"errors"

	"glance/internal/domain/model"
	repo "glance/internal/repository"

	"gorm.io/gorm"
)

type FavouriteGormRepository struct {
	db *gorm.DB
}

// DI
func NewFavouriteGormRepository(db *gorm.DB) *FavouriteGormRepository {
	return &FavouriteGormRepository{db: db}
}

// ユーザーのお気に入りを一覧取得
func (r *FavouriteGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Favourite, error) {
	var favourites []model.Favourite

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&favourites).Error; err != nil {
		return []model.Favourite{}, err
	}

	return favourites, nil
}

// IDでお気に入りを取得
func (r *FavouriteGormRepository) FindByID(ctx context.Context, favouriteID int64) (model.Favourite, error) {
	var f model.Favourite
	err := r.db.WithContext(ctx).First(&f, favouriteID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Favourite{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Favourite{}, err
	}
	return f, nil
}

// お気に入りを新規作成。(user_id, product_id)重複は ErrConflict
func (r *FavouriteGormRepository) Create(ctx context.Context, f model.Favourite) (model.Favourite, error) {
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return model.Favourite{}, translateError(err)
	}
	return f, nil
}

// お気に入りを削除
func (r *FavouriteGormRepository) DeleteByID(ctx context.Context, favouriteID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Favourite{}, favouriteID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ユーザーのお気に入りを全削除（ユーザー削除時）
func (r *FavouriteGormRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Favourite{}).Error
}

// 指定商品のお気に入りを全削除（商品削除時）
func (r *FavouriteGormRepository) DeleteByProductID(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.Favourite{}).Error
}
