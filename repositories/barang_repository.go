package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusmarket/models"
)

// BarangRepository adalah akses barang yang dibutuhkan state machine.
// Method Find* mengembalikan (nil, nil) saat barang tidak ada.
type BarangRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Barang, error)
	// FindActiveForUpdate mengunci baris barang (SELECT ... FOR UPDATE)
	// supaya dua reservasi bersamaan terserialisasi oleh database.
	FindActiveForUpdate(ctx context.Context, id uint) (*models.Barang, error)
	SetStatus(ctx context.Context, id uint, status models.StatusBarang) error
}

type gormBarangRepository struct {
	db *gorm.DB
}

func (r *gormBarangRepository) FindByID(ctx context.Context, id uint) (*models.Barang, error) {
	var barang models.Barang
	err := r.db.WithContext(ctx).
		Where("barang_id = ?", id).
		First(&barang).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &barang, nil
}

func (r *gormBarangRepository) FindActiveForUpdate(ctx context.Context, id uint) (*models.Barang, error) {
	var barang models.Barang
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("barang_id = ? AND lifecycle = ?", id, models.BarangAktif).
		First(&barang).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &barang, nil
}

func (r *gormBarangRepository) SetStatus(ctx context.Context, id uint, status models.StatusBarang) error {
	return r.db.WithContext(ctx).
		Model(&models.Barang{}).
		Where("barang_id = ?", id).
		Update("status", status).Error
}
