package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// StatusBarang adalah status ketersediaan barang. Hanya state machine
// transaksi yang boleh menulisnya setelah barang dibuat.
type StatusBarang string

const (
	BarangTersedia StatusBarang = "tersedia"
	BarangDipesan  StatusBarang = "dipesan"
	BarangTerjual  StatusBarang = "terjual"
)

type Kondisi string

const (
	KondisiBaru        Kondisi = "baru"
	KondisiSepertiBaru Kondisi = "seperti baru"
	KondisiBekas       Kondisi = "bekas"
	KondisiRusakRingan Kondisi = "rusak ringan"
)

func ParseKondisi(s string) (Kondisi, bool) {
	switch Kondisi(s) {
	case KondisiBaru, KondisiSepertiBaru, KondisiBekas, KondisiRusakRingan:
		return Kondisi(s), true
	}
	return "", false
}

// Lifecycle menggantikan kombinasi flag soft-delete + timestamp:
// aktif -> diarsipkan (pemilik/admin) -> dihapus (khusus admin).
type Lifecycle string

const (
	BarangAktif      Lifecycle = "aktif"
	BarangDiarsipkan Lifecycle = "diarsipkan"
	BarangDihapus    Lifecycle = "dihapus"
)

// FotoList disimpan sebagai kolom JSON berisi URL foto
type FotoList []string

func (f FotoList) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *FotoList) Scan(value interface{}) error {
	if value == nil {
		*f = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tipe kolom foto tidak dikenali: %T", value)
	}
	if len(raw) == 0 {
		*f = nil
		return nil
	}
	return json.Unmarshal(raw, f)
}

type Barang struct {
	BarangID   uint            `gorm:"primaryKey;autoIncrement;column:barang_id" json:"barang_id"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	KategoriID uint            `gorm:"not null;index" json:"kategori_id"`
	Judul      string          `gorm:"type:varchar(100);not null" json:"judul"`
	Deskripsi  string          `gorm:"type:text;not null" json:"deskripsi"`
	Foto       FotoList        `gorm:"type:json" json:"foto"`
	Harga      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"harga"`
	Lokasi     string          `gorm:"type:varchar(100)" json:"lokasi"`
	Kondisi    Kondisi         `gorm:"type:varchar(20);not null" json:"kondisi"`
	ViewsCount int             `gorm:"default:0" json:"views_count"`
	Status     StatusBarang    `gorm:"type:varchar(10);default:tersedia;index" json:"status"`
	Lifecycle  Lifecycle       `gorm:"type:varchar(12);default:aktif;index" json:"lifecycle"`
	ArchivedAt *time.Time      `json:"archived_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Pemilik  *User     `gorm:"foreignKey:UserID;references:UserID" json:"pemilik,omitempty"`
	Kategori *Kategori `gorm:"foreignKey:KategoriID;references:KategoriID" json:"kategori,omitempty"`
}

func (Barang) TableName() string {
	return "barang"
}
