package model

import "time"

type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Quantity    int64     `gorm:"not null;default:0" json:"quantity"`
	Description *string   `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	MediaID     *int64    `json:"media_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
