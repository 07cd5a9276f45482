package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusmarket/models"
)

// RatingRepository: Find* mengembalikan (nil, nil) saat tidak ada.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	FindByID(ctx context.Context, id uint) (*models.Rating, error)
	FindByTransaksiAndReviewer(ctx context.Context, transaksiID, reviewerID uint) (*models.Rating, error)
	FindByTransaksi(ctx context.Context, transaksiID uint) (*models.Rating, error)
	ListForReviewed(ctx context.Context, reviewedID uint, limit, offset int) ([]models.Rating, int64, error)
	StatsForReviewed(ctx context.Context, reviewedID uint) (*models.RatingStats, error)
	Save(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, id uint) error
}

type gormRatingRepository struct {
	db *gorm.DB
}

func (r *gormRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *gormRatingRepository) FindByID(ctx context.Context, id uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("rating_id = ?", id).
		First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *gormRatingRepository) FindByTransaksiAndReviewer(ctx context.Context, transaksiID, reviewerID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("transaksi_id = ? AND reviewer_id = ?", transaksiID, reviewerID).
		First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *gormRatingRepository) FindByTransaksi(ctx context.Context, transaksiID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Preload("Reviewed").
		Where("transaksi_id = ?", transaksiID).
		First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *gormRatingRepository) ListForReviewed(ctx context.Context, reviewedID uint, limit, offset int) ([]models.Rating, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("reviewed_id = ?", reviewedID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ratings []models.Rating
	err := query.
		Preload("Reviewer").
		Preload("Transaksi").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ratings).Error
	if err != nil {
		return nil, 0, err
	}
	return ratings, total, nil
}

func (r *gormRatingRepository) StatsForReviewed(ctx context.Context, reviewedID uint) (*models.RatingStats, error) {
	type row struct {
		Nilai int
		Total int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("nilai, COUNT(*) AS total").
		Where("reviewed_id = ?", reviewedID).
		Group("nilai").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &models.RatingStats{
		Distribution: map[string]int64{
			"1_star": 0, "2_star": 0, "3_star": 0, "4_star": 0, "5_star": 0,
		},
	}
	var sum int64
	for _, item := range rows {
		stats.TotalRatings += item.Total
		sum += int64(item.Nilai) * item.Total
		switch item.Nilai {
		case 1:
			stats.Distribution["1_star"] = item.Total
		case 2:
			stats.Distribution["2_star"] = item.Total
		case 3:
			stats.Distribution["3_star"] = item.Total
		case 4:
			stats.Distribution["4_star"] = item.Total
		case 5:
			stats.Distribution["5_star"] = item.Total
		}
	}
	stats.AverageRating = "0.0"
	if stats.TotalRatings > 0 {
		avg := float64(sum) / float64(stats.TotalRatings)
		stats.AverageRating = formatAverage(avg)
	}
	return stats, nil
}

func formatAverage(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}

func (r *gormRatingRepository) Save(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *gormRatingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Where("rating_id = ?", id).
		Delete(&models.Rating{}).Error
}
