package handler

import (
	"net/http"

	"glance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /favourites のHTTP
type FavouriteHandler struct {
	uc *usecase.FavouriteUsecase
}

// DI
func NewFavouriteHandler(uc *usecase.FavouriteUsecase) *FavouriteHandler {
	return &FavouriteHandler{uc: uc}
}

type AddFavouriteRequest struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
}

// お気に入りのルートを登録
func (h *FavouriteHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/favourites", h.create)
	e.GET("/users/:id/favourites", h.listByUser)
	e.DELETE("/favourites/:id", h.delete)
}

func (h *FavouriteHandler) create(c echo.Context) error {
	var req AddFavouriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddFavourite(c.Request().Context(), usecase.AddFavouriteInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *FavouriteHandler) listByUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListFavourites(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *FavouriteHandler) delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.DeleteFavourite(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
