package usecase

import (
	"context"
	"net/http"
	"time"

	"glance/internal/domain/model"
	repo "glance/internal/repository"
)

// CartUsecase は /carts と /cart_items の業務ロジック。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	userRepo     repo.UserRepository
	txManager    repo.TransactionManager
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	userRepo repo.UserRepository,
	txManager repo.TransactionManager,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
		txManager:    txManager,
	}
}

// POST /carts の入力DTO
type CreateCartInput struct {
	UserID int64
}

// POST /carts/{id}/items の入力DTO
type AddCartItemInput struct {
	ProductID int64
	Quantity  int64
}

// PATCH /cart_items/{id} の入力DTO
type UpdateCartItemInput struct {
	Quantity int64
}

type CartResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	TotalPrice    int64     `json:"total_price"`
	TotalQuantity int64     `json:"total_quantity"`
}

// 商品名・価格を埋め込んだ明細ビュー
type CartItemResponse struct {
	ID           int64  `json:"id"`
	CartID       int64  `json:"cart_id"`
	ProductID    int64  `json:"product_id"`
	Quantity     int64  `json:"quantity"`
	ProductName  string `json:"product_name"`
	ProductPrice int64  `json:"product_price"`
	TotalPrice   int64  `json:"total_price"`
}

type CartWithItemsResponse struct {
	CartResponse
	Items []CartItemResponse `json:"items"`
}

// 明細に商品名と価格を埋める
func buildCartItemResponse(ctx context.Context, productRepo repo.ProductRepository, item model.CartItem) (CartItemResponse, error) {
	p, err := productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return CartItemResponse{}, err
	}

	return CartItemResponse{
		ID:           item.ID,
		CartID:       item.CartID,
		ProductID:    item.ProductID,
		Quantity:     item.Quantity,
		ProductName:  p.Name,
		ProductPrice: p.Price,
		TotalPrice:   p.Price * item.Quantity,
	}, nil
}

// カートのサマリ（合計金額・合計数量）を作る
func buildCartResponse(ctx context.Context, cartItemRepo repo.CartItemRepository, productRepo repo.ProductRepository, cart model.Cart) (CartWithItemsResponse, error) {
	items, err := cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartWithItemsResponse{}, err
	}

	out := CartWithItemsResponse{
		CartResponse: CartResponse{
			ID:        cart.ID,
			UserID:    cart.UserID,
			CreatedAt: cart.CreatedAt,
		},
		Items: make([]CartItemResponse, 0, len(items)),
	}

	for _, item := range items {
		ir, err := buildCartItemResponse(ctx, productRepo, item)
		if err != nil {
			return CartWithItemsResponse{}, err
		}
		out.Items = append(out.Items, ir)
		out.TotalPrice += ir.TotalPrice
		out.TotalQuantity += item.Quantity
	}

	return out, nil
}

// カートを作成（1ユーザー1カート）
func (u *CartUsecase) CreateCart(ctx context.Context, in CreateCartInput) (CartResponse, error) {
	if in.UserID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	if _, err := u.userRepo.FindByID(ctx, in.UserID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.cartRepo.Create(ctx, model.Cart{UserID: in.UserID})
	if err == repo.ErrConflict {
		return CartResponse{}, NewHTTPError(http.StatusConflict, "cart already exists")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartResponse{
		ID:        cart.ID,
		UserID:    cart.UserID,
		CreatedAt: cart.CreatedAt,
	}, nil
}

// カートを明細・合計つきで取得
func (u *CartUsecase) GetCart(ctx context.Context, cartID int64) (CartWithItemsResponse, error) {
	if cartID <= 0 {
		return CartWithItemsResponse{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartWithItemsResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartWithItemsResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out, err := buildCartResponse(ctx, u.cartItemRepo, u.productRepo, cart)
	if err != nil {
		return CartWithItemsResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}

// カートを削除。明細も同一Txで消す。ユーザーは消さない
func (u *CartUsecase) DeleteCart(ctx context.Context, cartID int64) (MessageOutput, error) {
	if cartID <= 0 {
		return MessageOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Carts().FindByID(ctx, cartID); err != nil {
			return err
		}
		if err := r.CartItems().DeleteByCartID(ctx, cartID); err != nil {
			return err
		}
		return r.Carts().Delete(ctx, cartID)
	})
	if err == repo.ErrNotFound {
		return MessageOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return MessageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MessageOutput{Message: "Cart deleted successfully"}, nil
}

// カートに追加（同一商品は数量加算）
func (u *CartUsecase) AddCartItem(ctx context.Context, cartID int64, in AddCartItemInput) (CartItemResponse, error) {
	if cartID <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}
	if in.ProductID <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "quantity must be >= 1")
	}

	if _, err := u.cartRepo.FindByID(ctx, cartID); err != nil {
		if err == repo.ErrNotFound {
			return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "cart not found")
		}
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.cartItemRepo.UpsertByCartAndProduct(ctx, cartID, in.ProductID, in.Quantity)
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartItemResponse{
		ID:           item.ID,
		CartID:       item.CartID,
		ProductID:    item.ProductID,
		Quantity:     item.Quantity,
		ProductName:  p.Name,
		ProductPrice: p.Price,
		TotalPrice:   p.Price * item.Quantity,
	}, nil
}

// カートの明細一覧
func (u *CartUsecase) ListCartItems(ctx context.Context, cartID int64) ([]CartItemResponse, error) {
	if cartID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	if _, err := u.cartRepo.FindByID(ctx, cartID); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewHTTPError(http.StatusNotFound, "not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		ir, err := buildCartItemResponse(ctx, u.productRepo, item)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = append(out, ir)
	}
	return out, nil
}

// 数量変更
func (u *CartUsecase) UpdateCartItem(ctx context.Context, cartItemID int64, in UpdateCartItemInput) (CartItemResponse, error) {
	if cartItemID <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Quantity < 1 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "quantity must be >= 1")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item.Quantity = in.Quantity
	out, err := buildCartItemResponse(ctx, u.productRepo, item)
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}

// 明細削除
func (u *CartUsecase) DeleteCartItem(ctx context.Context, cartItemID int64) (MessageOutput, error) {
	if cartItemID <= 0 {
		return MessageOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.cartItemRepo.DeleteByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return MessageOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return MessageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MessageOutput{Message: "Cart item deleted successfully"}, nil
}
