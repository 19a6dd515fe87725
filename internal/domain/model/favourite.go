package model

import "time"

// 同じ(user, product)の二重登録は禁止
type Favourite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_favourites_user_product" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_favourites_user_product" json:"product_id"`
	Product   Product   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AddedAt   time.Time `gorm:"not null;autoCreateTime" json:"added_at"`
}
