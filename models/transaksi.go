package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusTransaksi adalah enum tertutup; nilai di luar himpunan ini
// ditolak di boundary sebelum menyentuh state machine.
type StatusTransaksi string

const (
	TransaksiPending    StatusTransaksi = "pending"
	TransaksiDibayar    StatusTransaksi = "dibayar"
	TransaksiDiproses   StatusTransaksi = "diproses"
	TransaksiDikirim    StatusTransaksi = "dikirim"
	TransaksiSelesai    StatusTransaksi = "selesai"
	TransaksiDibatalkan StatusTransaksi = "dibatalkan"
)

func ParseStatusTransaksi(s string) (StatusTransaksi, bool) {
	switch StatusTransaksi(s) {
	case TransaksiPending, TransaksiDibayar, TransaksiDiproses,
		TransaksiDikirim, TransaksiSelesai, TransaksiDibatalkan:
		return StatusTransaksi(s), true
	}
	return "", false
}

// IsTerminal melaporkan apakah status tidak bisa berubah lagi
func (s StatusTransaksi) IsTerminal() bool {
	return s == TransaksiSelesai || s == TransaksiDibatalkan
}

type Transaksi struct {
	TransaksiID      uint            `gorm:"primaryKey;autoIncrement;column:transaksi_id" json:"transaksi_id"`
	BarangID         uint            `gorm:"not null;index" json:"barang_id"`
	SellerID         uint            `gorm:"not null;index" json:"seller_id"`
	BuyerID          uint            `gorm:"not null;index" json:"buyer_id"`
	TanggalTransaksi time.Time       `gorm:"autoCreateTime" json:"tanggal_transaksi"`
	MetodePembayaran string          `gorm:"type:varchar(50)" json:"metode_pembayaran"`
	TotalHarga       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_harga"`
	Status           StatusTransaksi `gorm:"type:varchar(12);default:pending;index" json:"status"`
	Catatan          string          `gorm:"type:text" json:"catatan"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Barang  *Barang `gorm:"foreignKey:BarangID;references:BarangID" json:"barang,omitempty"`
	Penjual *User   `gorm:"foreignKey:SellerID;references:UserID" json:"penjual,omitempty"`
	Pembeli *User   `gorm:"foreignKey:BuyerID;references:UserID" json:"pembeli,omitempty"`
}

func (Transaksi) TableName() string {
	return "transaksi"
}

// Participant melaporkan apakah user terlibat sebagai pembeli atau penjual
func (t *Transaksi) Participant(userID uint) bool {
	return t.BuyerID == userID || t.SellerID == userID
}

// CounterpartyOf mengembalikan lawan transaksi dari user yang diberikan
func (t *Transaksi) CounterpartyOf(userID uint) uint {
	if t.BuyerID == userID {
		return t.SellerID
	}
	return t.BuyerID
}
