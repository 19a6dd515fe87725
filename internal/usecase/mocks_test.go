package usecase_test

import (
	"context"
	"testing"

	"glance/internal/domain/model"
	repo "glance/internal/repository"
	"glance/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(model.User)
	return created, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByLogin(ctx context.Context, login string) (model.User, error) {
	args := m.Called(ctx, login)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) Create(ctx context.Context, c model.Cart) (model.Cart, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Cart)
	return created, args.Error(1)
}

func (m *CartRepoMock) FindByID(ctx context.Context, id int64) (model.Cart, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) UpsertByCartAndProduct(ctx context.Context, cartID int64, productID int64, addQty int64) (model.CartItem, error) {
	args := m.Called(ctx, cartID, productID, addQty)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByCartID(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByProductID(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type FavouriteRepoMock struct{ mock.Mock }

func (m *FavouriteRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Favourite, error) {
	args := m.Called(ctx, userID)
	favourites, _ := args.Get(0).([]model.Favourite)
	return favourites, args.Error(1)
}

func (m *FavouriteRepoMock) FindByID(ctx context.Context, favouriteID int64) (model.Favourite, error) {
	args := m.Called(ctx, favouriteID)
	f, _ := args.Get(0).(model.Favourite)
	return f, args.Error(1)
}

func (m *FavouriteRepoMock) Create(ctx context.Context, f model.Favourite) (model.Favourite, error) {
	args := m.Called(ctx, f)
	created, _ := args.Get(0).(model.Favourite)
	return created, args.Error(1)
}

func (m *FavouriteRepoMock) DeleteByID(ctx context.Context, favouriteID int64) error {
	args := m.Called(ctx, favouriteID)
	return args.Error(0)
}

func (m *FavouriteRepoMock) DeleteByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *FavouriteRepoMock) DeleteByProductID(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// =====================
// Txスタブ（fnをそのまま実行する）
// =====================

type txReposStub struct {
	products   repo.ProductRepository
	users      repo.UserRepository
	carts      repo.CartRepository
	cartItems  repo.CartItemRepository
	favourites repo.FavouriteRepository
}

func (s *txReposStub) Products() repo.ProductRepository     { return s.products }
func (s *txReposStub) Users() repo.UserRepository           { return s.users }
func (s *txReposStub) Carts() repo.CartRepository           { return s.carts }
func (s *txReposStub) CartItems() repo.CartItemRepository   { return s.cartItems }
func (s *txReposStub) Favourites() repo.FavouriteRepository { return s.favourites }

type txManagerStub struct{ repos repo.TxRepos }

func (s *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(s.repos)
}

func newTxManagerStub(
	products repo.ProductRepository,
	users repo.UserRepository,
	carts repo.CartRepository,
	cartItems repo.CartItemRepository,
	favourites repo.FavouriteRepository,
) *txManagerStub {
	return &txManagerStub{repos: &txReposStub{
		products:   products,
		users:      users,
		carts:      carts,
		cartItems:  cartItems,
		favourites: favourites,
	}}
}

// =====================
// Helpers
// =====================

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), want)
}

func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
}
