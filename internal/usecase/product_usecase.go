package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"glance/internal/domain/model"
	repo "glance/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 操作結果メッセージ
type MessageOutput struct {
	Message string `json:"message"`
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	txManager   repo.TransactionManager
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	txManager repo.TransactionManager,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		txManager:   txManager,
	}
}

// POST /add_product, PUT /products/{id} の入力DTO
type AddProductInput struct {
	Name        string
	Quantity    int64
	Description *string
	Price       int64
	MediaID     *int64
}

// PATCH /products/{id} の入力DTO（全フィールド任意）
type UpdateProductInput struct {
	Name        *string
	Quantity    *int64
	Description *string
	Price       *int64
	MediaID     *int64
}

type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Quantity    int64     `json:"quantity"`
	Description *string   `json:"description"`
	Price       int64     `json:"price"`
	MediaID     *int64    `json:"media_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProductOutput struct {
	Message     string `json:"message"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
}

func toProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Quantity:    p.Quantity,
		Description: p.Description,
		Price:       p.Price,
		MediaID:     p.MediaID,
		CreatedAt:   p.CreatedAt,
	}
}

// DTO制約のチェック（name 1〜100 / quantity >= 0 / price >= 0 / description <= 500、文字数で数える）
func validateProductFields(name string, quantity int64, price int64, description *string) error {
	if n := utf8.RuneCountInString(name); n < 1 || n > 100 {
		return NewHTTPError(http.StatusBadRequest, "name must be 1-100 characters")
	}
	if quantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "quantity must be >= 0")
	}
	if price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if description != nil && utf8.RuneCountInString(*description) > 500 {
		return NewHTTPError(http.StatusBadRequest, "description must be <= 500 characters")
	}
	return nil
}

// 商品を作成
func (u *ProductUsecase) CreateProduct(ctx context.Context, in AddProductInput) (CreateProductOutput, error) {
	name := strings.TrimSpace(in.Name)
	if err := validateProductFields(name, in.Quantity, in.Price, in.Description); err != nil {
		return CreateProductOutput{}, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        name,
		Quantity:    in.Quantity,
		Description: in.Description,
		Price:       in.Price,
		MediaID:     in.MediaID,
	})
	if err != nil {
		return CreateProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CreateProductOutput{
		Message:     "Product created successfully",
		ProductID:   p.ID,
		ProductName: p.Name,
	}, nil
}

// 商品を全件取得。0件でも200で空リストを返す
func (u *ProductUsecase) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// 商品を1件取得
func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (ProductResponse, error) {
	if productID <= 0 {
		return ProductResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toProductResponse(p), nil
}

// 商品を全カラム上書きで更新（PUT）
func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in AddProductInput) (ProductResponse, error) {
	if productID <= 0 {
		return ProductResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	name := strings.TrimSpace(in.Name)
	if err := validateProductFields(name, in.Quantity, in.Price, in.Description); err != nil {
		return ProductResponse{}, err
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:          productID,
		Name:        name,
		Quantity:    in.Quantity,
		Description: in.Description,
		Price:       in.Price,
		MediaID:     in.MediaID,
	})
	if err == repo.ErrNotFound {
		return ProductResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toProductResponse(p), nil
}

// 指定フィールドだけ更新（PATCH）
func (u *ProductUsecase) PatchProduct(ctx context.Context, productID int64, in UpdateProductInput) (ProductResponse, error) {
	if productID <= 0 {
		return ProductResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.MediaID != nil {
		p.MediaID = in.MediaID
	}

	if err := validateProductFields(p.Name, p.Quantity, p.Price, p.Description); err != nil {
		return ProductResponse{}, err
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return ProductResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toProductResponse(p), nil
}

// 商品を削除。参照している明細・お気に入りも同一Txで消す
func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) (MessageOutput, error) {
	if productID <= 0 {
		return MessageOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Products().FindByID(ctx, productID); err != nil {
			return err
		}
		if err := r.CartItems().DeleteByProductID(ctx, productID); err != nil {
			return err
		}
		if err := r.Favourites().DeleteByProductID(ctx, productID); err != nil {
			return err
		}
		return r.Products().Delete(ctx, productID)
	})
	if err == repo.ErrNotFound {
		return MessageOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return MessageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MessageOutput{Message: "Product deleted successfully"}, nil
}
