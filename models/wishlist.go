package models

import "time"

type Wishlist struct {
	WishlistID uint      `gorm:"primaryKey;autoIncrement;column:wishlist_id" json:"wishlist_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_barang" json:"user_id"`
	BarangID   uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_barang" json:"barang_id"`
	CreatedAt  time.Time `json:"created_at"`

	Barang *Barang `gorm:"foreignKey:BarangID;references:BarangID" json:"barang,omitempty"`
}

func (Wishlist) TableName() string {
	return "wishlist"
}
