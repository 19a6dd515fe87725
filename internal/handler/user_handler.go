package handler

import (
	"net/http"

	"glance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /users のHTTP
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type CreateUserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Login    *string `json:"login"`
	Password *string `json:"password"`
}

// ユーザーのルートを登録
func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/users", h.create)
	e.GET("/users/:id", h.detail)
	e.GET("/users/:id/cart", h.detailWithCart)
	e.PATCH("/users/:id", h.patch)
	e.DELETE("/users/:id", h.delete)
}

func (h *UserHandler) create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) detailWithCart(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetUserWithCart(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) patch(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PatchUser(c.Request().Context(), id, usecase.UpdateUserInput{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
