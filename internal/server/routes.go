package server

import (
	"net/http"

	"glance/internal/handler"

	"github.com/labstack/echo/v4"
)

// 動作確認用
type healthResponse struct {
	Succes bool `json:"Succes"`
}

func RegisterRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	userH *handler.UserHandler,
	cartH *handler.CartHandler,
	favouriteH *handler.FavouriteHandler,
) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{Succes: true})
	})

	productH.RegisterRoutes(e)
	userH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	favouriteH.RegisterRoutes(e)
}
