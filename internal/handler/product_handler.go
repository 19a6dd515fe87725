package handler

import (
	"net/http"
	"strconv"

	"glance/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	// 500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// /products のHTTP
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type AddProductRequest struct {
	Name        string  `json:"name"`
	Quantity    int64   `json:"quantity"`
	Description *string `json:"description"`
	Price       int64   `json:"price"`
	MediaID     *int64  `json:"media_id"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Quantity    *int64  `json:"quantity"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	MediaID     *int64  `json:"media_id"`
}

// 商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/add_product", h.create)
	e.GET("/get_products", h.list)
	e.GET("/products/:id", h.detail)
	e.PUT("/products/:id", h.update)
	e.PATCH("/products/:id", h.patch)
	e.DELETE("/products/:id", h.delete)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateProduct(c.Request().Context(), usecase.AddProductInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Description: req.Description,
		Price:       req.Price,
		MediaID:     req.MediaID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateProduct(c.Request().Context(), id, usecase.AddProductInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Description: req.Description,
		Price:       req.Price,
		MediaID:     req.MediaID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) patch(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PatchProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Description: req.Description,
		Price:       req.Price,
		MediaID:     req.MediaID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
