package repositories

import (
	"context"

	"gorm.io/gorm"

	"campusmarket/models"
)

type NotifikasiRepository interface {
	Create(ctx context.Context, notifikasi *models.Notifikasi) error
}

type gormNotifikasiRepository struct {
	db *gorm.DB
}

func (r *gormNotifikasiRepository) Create(ctx context.Context, notifikasi *models.Notifikasi) error {
	return r.db.WithContext(ctx).Create(notifikasi).Error
}
