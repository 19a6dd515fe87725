package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"glance/internal/domain/model"
	repo "glance/internal/repository"
	"glance/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartUsecase(cRepo *CartRepoMock, ciRepo *CartItemRepoMock, pRepo *ProductRepoMock, uRepo *UserRepoMock) *usecase.CartUsecase {
	tx := newTxManagerStub(pRepo, uRepo, cRepo, ciRepo, new(FavouriteRepoMock))
	return usecase.NewCartUsecase(cRepo, ciRepo, pRepo, uRepo, tx)
}

func TestCartUsecase_CreateCart_UserNotFound(t *testing.T) {
	ctx := context.Background()

	uRepo := new(UserRepoMock)
	uc := newCartUsecase(new(CartRepoMock), new(CartItemRepoMock), new(ProductRepoMock), uRepo)

	uRepo.On("FindByID", mock.Anything, int64(99)).Return(model.User{}, repo.ErrNotFound)

	_, err := uc.CreateCart(ctx, usecase.CreateCartInput{UserID: 99})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCartUsecase_CreateCart_SecondCartConflicts(t *testing.T) {
	ctx := context.Background()

	uRepo := new(UserRepoMock)
	cRepo := new(CartRepoMock)
	uc := newCartUsecase(cRepo, new(CartItemRepoMock), new(ProductRepoMock), uRepo)

	uRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1, Login: "alice"}, nil)
	cRepo.On("Create", mock.Anything, mock.Anything).Return(model.Cart{}, repo.ErrConflict)

	_, err := uc.CreateCart(ctx, usecase.CreateCartInput{UserID: 1})
	assertHTTPStatus(t, err, http.StatusConflict)
}

func TestCartUsecase_CreateCart_Success(t *testing.T) {
	ctx := context.Background()

	uRepo := new(UserRepoMock)
	cRepo := new(CartRepoMock)
	uc := newCartUsecase(cRepo, new(CartItemRepoMock), new(ProductRepoMock), uRepo)

	uRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1, Login: "alice"}, nil)
	cRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return c.UserID == 1
	})).Return(model.Cart{ID: 10, UserID: 1}, nil)

	out, err := uc.CreateCart(ctx, usecase.CreateCartInput{UserID: 1})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	assert.Equal(t, int64(0), out.TotalPrice)
	assert.Equal(t, int64(0), out.TotalQuantity)
}

func TestCartUsecase_GetCart_NotFound(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	uc := newCartUsecase(cRepo, new(CartItemRepoMock), new(ProductRepoMock), new(UserRepoMock))

	cRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Cart{}, repo.ErrNotFound)

	_, err := uc.GetCart(ctx, 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCartUsecase_GetCart_ComputesTotals(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	ciRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := newCartUsecase(cRepo, ciRepo, pRepo, new(UserRepoMock))

	cRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	ciRepo.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{ID: 100, CartID: 10, ProductID: 5, Quantity: 2},
		{ID: 101, CartID: 10, ProductID: 6, Quantity: 1},
	}, nil)
	pRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, Name: "Widget", Price: 100}, nil)
	pRepo.On("FindByID", mock.Anything, int64(6)).Return(model.Product{ID: 6, Name: "Gadget", Price: 250}, nil)

	out, err := uc.GetCart(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(450), out.TotalPrice)
	assert.Equal(t, int64(3), out.TotalQuantity)
	assert.Equal(t, 2, len(out.Items))
	assert.Equal(t, "Widget", out.Items[0].ProductName)
	assert.Equal(t, int64(200), out.Items[0].TotalPrice)
}

func TestCartUsecase_AddCartItem_InvalidQuantity(t *testing.T) {
	uc := newCartUsecase(new(CartRepoMock), new(CartItemRepoMock), new(ProductRepoMock), new(UserRepoMock))

	_, err := uc.AddCartItem(context.Background(), 10, usecase.AddCartItemInput{ProductID: 5, Quantity: 0})
	assertErrContains(t, err, "quantity must be >= 1")
}

func TestCartUsecase_AddCartItem_ProductNotFound(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	pRepo := new(ProductRepoMock)
	uc := newCartUsecase(cRepo, new(CartItemRepoMock), pRepo, new(UserRepoMock))

	cRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddCartItem(ctx, 10, usecase.AddCartItemInput{ProductID: 99, Quantity: 1})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCartUsecase_AddCartItem_Success(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	ciRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := newCartUsecase(cRepo, ciRepo, pRepo, new(UserRepoMock))

	cRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	pRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, Name: "Widget", Price: 100}, nil)
	ciRepo.On("UpsertByCartAndProduct", mock.Anything, int64(10), int64(5), int64(2)).
		Return(model.CartItem{ID: 100, CartID: 10, ProductID: 5, Quantity: 3}, nil)

	out, err := uc.AddCartItem(ctx, 10, usecase.AddCartItemInput{ProductID: 5, Quantity: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.Quantity)
	assert.Equal(t, "Widget", out.ProductName)
	assert.Equal(t, int64(100), out.ProductPrice)
	assert.Equal(t, int64(300), out.TotalPrice)

	ciRepo.AssertExpectations(t)
}

func TestCartUsecase_UpdateCartItem_NotFound(t *testing.T) {
	ctx := context.Background()

	ciRepo := new(CartItemRepoMock)
	uc := newCartUsecase(new(CartRepoMock), ciRepo, new(ProductRepoMock), new(UserRepoMock))

	ciRepo.On("FindByID", mock.Anything, int64(99)).Return(model.CartItem{}, repo.ErrNotFound)

	_, err := uc.UpdateCartItem(ctx, 99, usecase.UpdateCartItemInput{Quantity: 2})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCartUsecase_DeleteCart_RemovesItems(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	ciRepo := new(CartItemRepoMock)
	uc := newCartUsecase(cRepo, ciRepo, new(ProductRepoMock), new(UserRepoMock))

	cRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	ciRepo.On("DeleteByCartID", mock.Anything, int64(10)).Return(nil)
	cRepo.On("Delete", mock.Anything, int64(10)).Return(nil)

	out, err := uc.DeleteCart(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, "Cart deleted successfully", out.Message)

	cRepo.AssertExpectations(t)
	ciRepo.AssertExpectations(t)
}

func TestCartUsecase_DeleteCartItem_NotFound(t *testing.T) {
	ctx := context.Background()

	ciRepo := new(CartItemRepoMock)
	uc := newCartUsecase(new(CartRepoMock), ciRepo, new(ProductRepoMock), new(UserRepoMock))

	ciRepo.On("DeleteByID", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	_, err := uc.DeleteCartItem(ctx, 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
