package models

import "time"

type StatusLaporan string

const (
	LaporanPending  StatusLaporan = "pending"
	LaporanDiproses StatusLaporan = "diproses"
	LaporanSelesai  StatusLaporan = "selesai"
)

func ParseStatusLaporan(s string) (StatusLaporan, bool) {
	switch StatusLaporan(s) {
	case LaporanPending, LaporanDiproses, LaporanSelesai:
		return StatusLaporan(s), true
	}
	return "", false
}

// Laporan adalah aduan satu user terhadap user lain, ditindaklanjuti admin
type Laporan struct {
	LaporanID  uint          `gorm:"primaryKey;autoIncrement;column:laporan_id" json:"laporan_id"`
	PelaporID  uint          `gorm:"not null;index" json:"pelapor_id"`
	TerlaporID uint          `gorm:"not null;index" json:"terlapor_id"`
	Alasan     string        `gorm:"type:text;not null" json:"alasan"`
	Status     StatusLaporan `gorm:"type:varchar(10);default:pending;index" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	Pelapor  *User `gorm:"foreignKey:PelaporID;references:UserID" json:"pelapor,omitempty"`
	Terlapor *User `gorm:"foreignKey:TerlaporID;references:UserID" json:"terlapor,omitempty"`
}

func (Laporan) TableName() string {
	return "laporan"
}
