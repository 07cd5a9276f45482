package models

import "time"

type Chat struct {
	ChatID     uint      `gorm:"primaryKey;autoIncrement;column:chat_id" json:"chat_id"`
	BarangID   uint      `gorm:"not null;index:idx_chat_barang" json:"barang_id"`
	PengirimID uint      `gorm:"not null;index" json:"pengirim_id"`
	PenerimaID uint      `gorm:"not null;index" json:"penerima_id"`
	Pesan      string    `gorm:"type:text;not null" json:"pesan"`
	Dibaca     bool      `gorm:"default:false" json:"dibaca"`
	CreatedAt  time.Time `json:"created_at"`

	Barang   *Barang `gorm:"foreignKey:BarangID;references:BarangID" json:"barang,omitempty"`
	Pengirim *User   `gorm:"foreignKey:PengirimID;references:UserID" json:"pengirim,omitempty"`
	Penerima *User   `gorm:"foreignKey:PenerimaID;references:UserID" json:"penerima,omitempty"`
}

func (Chat) TableName() string {
	return "chat"
}
