package models

import "time"

type Notifikasi struct {
	NotifikasiID uint      `gorm:"primaryKey;autoIncrement;column:notifikasi_id" json:"notifikasi_id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Judul        string    `gorm:"type:varchar(100);not null" json:"judul"`
	Pesan        string    `gorm:"type:text;not null" json:"pesan"`
	Dibaca       bool      `gorm:"default:false;index" json:"dibaca"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Notifikasi) TableName() string {
	return "notifikasi"
}
