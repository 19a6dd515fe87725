package repository

import (
	"context"

	repo "glance/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products   repo.ProductRepository
	users      repo.UserRepository
	carts      repo.CartRepository
	cartItems  repo.CartItemRepository
	favourites repo.FavouriteRepository
}

func (r *txReposGorm) Products() repo.ProductRepository     { return r.products }
func (r *txReposGorm) Users() repo.UserRepository           { return r.users }
func (r *txReposGorm) Carts() repo.CartRepository           { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository   { return r.cartItems }
func (r *txReposGorm) Favourites() repo.FavouriteRepository { return r.favourites }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがnilを返せばcommit、errorかpanicならrollback
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:   NewProductGormRepository(tx),
			users:      NewUserGormRepository(tx),
			carts:      NewCartGormRepository(tx),
			cartItems:  NewCartItemGormRepository(tx),
			favourites: NewFavouriteGormRepository(tx),
		}
		return fn(r)
	})
}
