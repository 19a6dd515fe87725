package model

// カートの明細
type CartItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64   `gorm:"not null;index" json:"cart_id"`
	Cart      Cart    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ProductID int64   `gorm:"not null;index" json:"product_id"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Quantity  int64   `gorm:"not null;default:1" json:"quantity"`
}
