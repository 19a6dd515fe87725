package server

import (
	"glance/internal/handler"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はミドルウェアとルートを組んだechoを返す
func New(
	productH *handler.ProductHandler,
	userH *handler.UserHandler,
	cartH *handler.CartHandler,
	favouriteH *handler.FavouriteHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e, productH, userH, cartH, favouriteH)
	return e
}
