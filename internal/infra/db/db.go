package db

import (
	"glance/internal/config"
	"glance/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
}

// AutoMigrate は5テーブルのスキーマを作成する。起動時に1回だけ呼ぶ
func AutoMigrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.Product{},
		&model.User{},
		&model.Cart{},
		&model.CartItem{},
		&model.Favourite{},
	)
}

// Close はコネクションプールを閉じる
func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
