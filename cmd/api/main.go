package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glance/internal/config"
	"glance/internal/handler"
	"glance/internal/infra/db"
	infraRepo "glance/internal/infra/repository"
	"glance/internal/server"
	"glance/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは任意（本番は環境変数）
	_ = godotenv.Load()

	cfg := config.Load()

	// DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	defer db.Close(gormDB)

	if err := db.AutoMigrate(gormDB); err != nil {
		panic(err)
	}

	// Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	favouriteRepo := infraRepo.NewFavouriteGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, txManager)
	userUC := usecase.NewUserUsecase(userRepo, cartRepo, cartItemRepo, productRepo, txManager)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo, userRepo, txManager)
	favouriteUC := usecase.NewFavouriteUsecase(favouriteRepo, userRepo, productRepo)

	// Handler生成
	productH := handler.NewProductHandler(productUC)
	userH := handler.NewUserHandler(userUC)
	cartH := handler.NewCartHandler(cartUC)
	favouriteH := handler.NewFavouriteHandler(favouriteUC)

	// Server起動
	e := server.New(productH, userH, cartH, favouriteH)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	// SIGINT/SIGTERMで止める
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
