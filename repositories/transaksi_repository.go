package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusmarket/models"
)

// TransaksiFilter membatasi daftar transaksi milik satu user
type TransaksiFilter struct {
	UserID uint
	Role   string // "buyer", "seller", atau kosong untuk keduanya
	Status models.StatusTransaksi
	Limit  int
	Offset int
}

// TransaksiRepository: Find* mengembalikan (nil, nil) saat tidak ada.
type TransaksiRepository interface {
	Create(ctx context.Context, transaksi *models.Transaksi) error
	FindByID(ctx context.Context, id uint) (*models.Transaksi, error)
	// FindByIDForUpdate mengunci baris transaksi supaya dua transisi
	// bersamaan tidak sama-sama lolos dari state sumber yang sama.
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Transaksi, error)
	// FindDetail memuat barang, penjual, dan pembeli
	FindDetail(ctx context.Context, id uint) (*models.Transaksi, error)
	UpdateStatus(ctx context.Context, id uint, status models.StatusTransaksi) error
	ListForUser(ctx context.Context, filter TransaksiFilter) ([]models.Transaksi, int64, error)
}

type gormTransaksiRepository struct {
	db *gorm.DB
}

func (r *gormTransaksiRepository) Create(ctx context.Context, transaksi *models.Transaksi) error {
	return r.db.WithContext(ctx).Create(transaksi).Error
}

func (r *gormTransaksiRepository) FindByID(ctx context.Context, id uint) (*models.Transaksi, error) {
	return r.findByID(ctx, r.db, id)
}

func (r *gormTransaksiRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Transaksi, error) {
	return r.findByID(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *gormTransaksiRepository) findByID(ctx context.Context, db *gorm.DB, id uint) (*models.Transaksi, error) {
	var transaksi models.Transaksi
	err := db.WithContext(ctx).
		Where("transaksi_id = ?", id).
		First(&transaksi).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transaksi, nil
}

func (r *gormTransaksiRepository) FindDetail(ctx context.Context, id uint) (*models.Transaksi, error) {
	var transaksi models.Transaksi
	err := r.db.WithContext(ctx).
		Preload("Barang").
		Preload("Penjual").
		Preload("Pembeli").
		Where("transaksi_id = ?", id).
		First(&transaksi).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transaksi, nil
}

func (r *gormTransaksiRepository) UpdateStatus(ctx context.Context, id uint, status models.StatusTransaksi) error {
	return r.db.WithContext(ctx).
		Model(&models.Transaksi{}).
		Where("transaksi_id = ?", id).
		Update("status", status).Error
}

func (r *gormTransaksiRepository) ListForUser(ctx context.Context, filter TransaksiFilter) ([]models.Transaksi, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Transaksi{})

	switch filter.Role {
	case "buyer":
		query = query.Where("buyer_id = ?", filter.UserID)
	case "seller":
		query = query.Where("seller_id = ?", filter.UserID)
	default:
		query = query.Where("buyer_id = ? OR seller_id = ?", filter.UserID, filter.UserID)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transaksi []models.Transaksi
	err := query.
		Preload("Barang").
		Preload("Penjual").
		Preload("Pembeli").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&transaksi).Error
	if err != nil {
		return nil, 0, err
	}
	return transaksi, total, nil
}
