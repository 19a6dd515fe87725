package repository

import (
	"context"
	"errors"

	"glance/internal/domain/model"
	repo "glance/internal/repository"

	"gorm.io/gorm"
)

type UserGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// ユーザーを新規作成。login重複は ErrConflict
func (r *UserGormRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return model.User{}, translateError(err)
	}
	return u, nil
}

// IDでユーザーを1件取得
func (r *UserGormRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// loginでユーザーを1件取得
func (r *UserGormRepository) FindByLogin(ctx context.Context, login string) (model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("login = ?", login).
		First(&u).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// ユーザーの更新
func (r *UserGormRepository) Update(ctx context.Context, u model.User) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", u.ID).Updates(map[string]interface{}{
		"login":         u.Login,
		"password_hash": u.PasswordHash,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ユーザー削除
func (r *UserGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
