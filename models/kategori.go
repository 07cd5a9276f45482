package models

import "time"

type Kategori struct {
	KategoriID   uint      `gorm:"primaryKey;autoIncrement;column:kategori_id" json:"kategori_id"`
	NamaKategori string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_kategori_nama" json:"nama_kategori"`
	Deskripsi    string    `gorm:"type:text" json:"deskripsi"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Kategori) TableName() string {
	return "kategori"
}
