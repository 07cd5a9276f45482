// Package repositories membungkus akses GORM di balik kontrak yang
// dipakai service inti, termasuk batas transaksi database.
package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store mengumpulkan repository per entitas. InTransaction menjalankan
// fn terhadap Store yang terikat pada satu transaksi database; error dari
// fn membatalkan seluruh unit, tidak ada state setengah jadi.
type Store interface {
	Barang() BarangRepository
	Transaksi() TransaksiRepository
	Rating() RatingRepository
	Notifikasi() NotifikasiRepository
	InTransaction(ctx context.Context, fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Barang() BarangRepository {
	return &gormBarangRepository{db: s.db}
}

func (s *gormStore) Transaksi() TransaksiRepository {
	return &gormTransaksiRepository{db: s.db}
}

func (s *gormStore) Rating() RatingRepository {
	return &gormRatingRepository{db: s.db}
}

func (s *gormStore) Notifikasi() NotifikasiRepository {
	return &gormNotifikasiRepository{db: s.db}
}

func (s *gormStore) InTransaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
