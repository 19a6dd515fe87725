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

func TestFavouriteUsecase_AddFavourite_UserNotFound(t *testing.T) {
	ctx := context.Background()

	uRepo := new(UserRepoMock)
	uc := usecase.NewFavouriteUsecase(new(FavouriteRepoMock), uRepo, new(ProductRepoMock))

	uRepo.On("FindByID", mock.Anything, int64(99)).Return(model.User{}, repo.ErrNotFound)

	_, err := uc.AddFavourite(ctx, usecase.AddFavouriteInput{UserID: 99, ProductID: 1})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestFavouriteUsecase_AddFavourite_ProductNotFound(t *testing.T) {
	ctx := context.Background()

	uRepo := new(UserRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewFavouriteUsecase(new(FavouriteRepoMock), uRepo, pRepo)

	uRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1, Login: "alice"}, nil)
	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddFavourite(ctx, usecase.AddFavouriteInput{UserID: 1, ProductID: 99})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestFavouriteUsecase_AddFavourite_DuplicateConflicts(t *testing.T) {
	ctx := context.Background()

	uRepo := new(UserRepoMock)
	pRepo := new(ProductRepoMock)
	fRepo := new(FavouriteRepoMock)
	uc := usecase.NewFavouriteUsecase(fRepo, uRepo, pRepo)

	uRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1, Login: "alice"}, nil)
	pRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, Name: "Widget", Price: 100}, nil)
	fRepo.On("Create", mock.Anything, mock.Anything).Return(model.Favourite{}, repo.ErrConflict)

	_, err := uc.AddFavourite(ctx, usecase.AddFavouriteInput{UserID: 1, ProductID: 5})
	assertHTTPStatus(t, err, http.StatusConflict)
}

func TestFavouriteUsecase_AddFavourite_Success(t *testing.T) {
	ctx := context.Background()

	uRepo := new(UserRepoMock)
	pRepo := new(ProductRepoMock)
	fRepo := new(FavouriteRepoMock)
	uc := usecase.NewFavouriteUsecase(fRepo, uRepo, pRepo)

	uRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1, Login: "alice"}, nil)
	pRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, Name: "Widget", Price: 100}, nil)
	fRepo.On("Create", mock.Anything, mock.MatchedBy(func(f model.Favourite) bool {
		return f.UserID == 1 && f.ProductID == 5
	})).Return(model.Favourite{ID: 7, UserID: 1, ProductID: 5}, nil)

	out, err := uc.AddFavourite(ctx, usecase.AddFavouriteInput{UserID: 1, ProductID: 5})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "Widget", out.ProductName)
	assert.Equal(t, int64(100), out.ProductPrice)

	fRepo.AssertExpectations(t)
}

func TestFavouriteUsecase_ListFavourites_Enriched(t *testing.T) {
	ctx := context.Background()

	uRepo := new(UserRepoMock)
	pRepo := new(ProductRepoMock)
	fRepo := new(FavouriteRepoMock)
	uc := usecase.NewFavouriteUsecase(fRepo, uRepo, pRepo)

	uRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1, Login: "alice"}, nil)
	fRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.Favourite{
		{ID: 7, UserID: 1, ProductID: 5},
		{ID: 8, UserID: 1, ProductID: 6},
	}, nil)
	pRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, Name: "Widget", Price: 100}, nil)
	pRepo.On("FindByID", mock.Anything, int64(6)).Return(model.Product{ID: 6, Name: "Gadget", Price: 250}, nil)

	out, err := uc.ListFavourites(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out))
	assert.Equal(t, "Widget", out[0].ProductName)
	assert.Equal(t, int64(250), out[1].ProductPrice)
}

func TestFavouriteUsecase_DeleteFavourite_NotFound(t *testing.T) {
	ctx := context.Background()

	fRepo := new(FavouriteRepoMock)
	uc := usecase.NewFavouriteUsecase(fRepo, new(UserRepoMock), new(ProductRepoMock))

	fRepo.On("DeleteByID", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	_, err := uc.DeleteFavourite(ctx, 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
