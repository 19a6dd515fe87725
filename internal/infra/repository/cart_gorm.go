package repository

import (
	"context"
	"errors"

	"glance/internal/domain/model"
	repo "glance/internal/repository"

	"gorm.io/gorm"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カートを新規作成。user_id重複は ErrConflict
func (r *CartGormRepository) Create(ctx context.Context, c model.Cart) (model.Cart, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Cart{}, translateError(err)
	}
	return c, nil
}

// IDでカートを取得
func (r *CartGormRepository) FindByID(ctx context.Context, id int64) (model.Cart, error) {
	var c model.Cart
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return c, nil
}

// ユーザーのカートを取得
func (r *CartGormRepository) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	var c model.Cart

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return c, nil
}

// カート削除。明細の削除は呼び出し側がTxでまとめる
func (r *CartGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Cart{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
