package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"glance/internal/domain/model"
	repo "glance/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// UserUsecase は /users の業務ロジック。
type UserUsecase struct {
	userRepo     repo.UserRepository
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	txManager    repo.TransactionManager
}

// DI
func NewUserUsecase(
	userRepo repo.UserRepository,
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	txManager repo.TransactionManager,
) *UserUsecase {
	return &UserUsecase{
		userRepo:     userRepo,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		txManager:    txManager,
	}
}

// POST /users の入力DTO
type CreateUserInput struct {
	Login    string
	Password string
}

// PATCH /users/{id} の入力DTO（全フィールド任意）
type UpdateUserInput struct {
	Login    *string
	Password *string
}

// パスワードハッシュは返さない
type UserResponse struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"created_at"`
}

type UserWithCartResponse struct {
	UserResponse
	Cart *CartResponse `json:"cart"`
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Login:     u.Login,
		CreatedAt: u.CreatedAt,
	}
}

// DTO制約のチェック（login 3〜50 / password 6〜255、文字数で数える）
func validateLogin(login string) error {
	if n := utf8.RuneCountInString(login); n < 3 || n > 50 {
		return NewHTTPError(http.StatusBadRequest, "login must be 3-50 characters")
	}
	return nil
}

func validatePassword(password string) error {
	if n := utf8.RuneCountInString(password); n < 6 || n > 255 {
		return NewHTTPError(http.StatusBadRequest, "password must be 6-255 characters")
	}
	return nil
}

// bcryptは72バイトまでしか見ないので、SHA-256+base64に畳んでから渡す
func hashPassword(password string) (string, error) {
	digest := sha256.Sum256([]byte(password))
	encoded := base64.StdEncoding.EncodeToString(digest[:])

	hash, err := bcrypt.GenerateFromPassword([]byte(encoded), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ユーザーを作成。パスワードはbcryptで保存
func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (UserResponse, error) {
	login := strings.TrimSpace(in.Login)
	if err := validateLogin(login); err != nil {
		return UserResponse{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return UserResponse{}, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	user, err := u.userRepo.Create(ctx, model.User{
		Login:        login,
		PasswordHash: hash,
	})
	if err == repo.ErrConflict {
		return UserResponse{}, NewHTTPError(http.StatusConflict, "login already used")
	}
	if err != nil {
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserResponse(user), nil
}

// ユーザーを1件取得
func (u *UserUsecase) GetUser(ctx context.Context, userID int64) (UserResponse, error) {
	if userID <= 0 {
		return UserResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return UserResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserResponse(user), nil
}

// ユーザーとカートのサマリをまとめて返す。カートが無ければnull
func (u *UserUsecase) GetUserWithCart(ctx context.Context, userID int64) (UserWithCartResponse, error) {
	if userID <= 0 {
		return UserWithCartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return UserWithCartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return UserWithCartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := UserWithCartResponse{UserResponse: toUserResponse(user)}

	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return out, nil
	}
	if err != nil {
		return UserWithCartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	summary, err := buildCartResponse(ctx, u.cartItemRepo, u.productRepo, cart)
	if err != nil {
		return UserWithCartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	out.Cart = &summary.CartResponse
	return out, nil
}

// 指定フィールドだけ更新（PATCH）
func (u *UserUsecase) PatchUser(ctx context.Context, userID int64, in UpdateUserInput) (UserResponse, error) {
	if userID <= 0 {
		return UserResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return UserResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Login != nil {
		login := strings.TrimSpace(*in.Login)
		if err := validateLogin(login); err != nil {
			return UserResponse{}, err
		}
		user.Login = login
	}
	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return UserResponse{}, err
		}
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "hash error")
		}
		user.PasswordHash = hash
	}

	err = u.userRepo.Update(ctx, user)
	if err == repo.ErrConflict {
		return UserResponse{}, NewHTTPError(http.StatusConflict, "login already used")
	}
	if err == repo.ErrNotFound {
		return UserResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserResponse(user), nil
}

// ユーザーを削除。お気に入り・カート・明細も同一Txで消す
func (u *UserUsecase) DeleteUser(ctx context.Context, userID int64) (MessageOutput, error) {
	if userID <= 0 {
		return MessageOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Users().FindByID(ctx, userID); err != nil {
			return err
		}

		if err := r.Favourites().DeleteByUserID(ctx, userID); err != nil {
			return err
		}

		cart, err := r.Carts().FindByUserID(ctx, userID)
		if err == nil {
			if err := r.CartItems().DeleteByCartID(ctx, cart.ID); err != nil {
				return err
			}
			if err := r.Carts().Delete(ctx, cart.ID); err != nil {
				return err
			}
		} else if err != repo.ErrNotFound {
			return err
		}

		return r.Users().Delete(ctx, userID)
	})
	if err == repo.ErrNotFound {
		return MessageOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return MessageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MessageOutput{Message: "User deleted successfully"}, nil
}
