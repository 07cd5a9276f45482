package services

import (
	"context"
	"fmt"

	"campusmarket/apperrors"
	"campusmarket/models"
	"campusmarket/repositories"
)

type RatingService struct {
	store    repositories.Store
	notifier Notifier
}

func NewRatingService(store repositories.Store, notifier Notifier) *RatingService {
	return &RatingService{store: store, notifier: notifier}
}

type CreateRatingInput struct {
	TransaksiID uint
	Nilai       int
	Komentar    string
}

// Create menilai lawan transaksi yang sudah selesai. Satu peserta hanya
// boleh menilai sekali per transaksi.
func (s *RatingService) Create(ctx context.Context, actor Actor, input CreateRatingInput) (*models.Rating, error) {
	if input.Nilai < 1 || input.Nilai > 5 {
		return nil, apperrors.Validation("Rating value must be between 1 and 5")
	}

	var created *models.Rating

	err := s.store.InTransaction(ctx, func(tx repositories.Store) error {
		transaksi, err := tx.Transaksi().FindByID(ctx, input.TransaksiID)
		if err != nil {
			return err
		}
		if transaksi == nil || transaksi.Status != models.TransaksiSelesai {
			return apperrors.NotFound("Transaction not found or not completed")
		}
		if !transaksi.Participant(actor.ID) {
			return apperrors.Authorization("You are not authorized to rate this transaction")
		}

		reviewedID := transaksi.CounterpartyOf(actor.ID)

		existing, err := tx.Rating().FindByTransaksiAndReviewer(ctx, input.TransaksiID, actor.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.Conflict("You have already rated this transaction")
		}

		rating := &models.Rating{
			TransaksiID: input.TransaksiID,
			ReviewerID:  actor.ID,
			ReviewedID:  reviewedID,
			Nilai:       input.Nilai,
			Komentar:    input.Komentar,
		}
		if err := tx.Rating().Create(ctx, rating); err != nil {
			return err
		}

		created = rating
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, created.ReviewedID, "Rating Baru Diterima",
		fmt.Sprintf("Anda menerima rating %d bintang untuk transaksi #%d", created.Nilai, created.TransaksiID))
	return created, nil
}

// GetByTransaksi mengembalikan rating pertama yang tercatat untuk sebuah
// transaksi (untuk halaman detail transaksi)
func (s *RatingService) GetByTransaksi(ctx context.Context, transaksiID uint) (*models.Rating, error) {
	rating, err := s.store.Rating().FindByTransaksi(ctx, transaksiID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, apperrors.NotFound("Rating not found")
	}
	return rating, nil
}

func (s *RatingService) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Rating, int64, error) {
	return s.store.Rating().ListForReviewed(ctx, userID, limit, offset)
}

func (s *RatingService) StatsForUser(ctx context.Context, userID uint) (*models.RatingStats, error) {
	return s.store.Rating().StatsForReviewed(ctx, userID)
}

// Update mengubah nilai/komentar rating milik actor sendiri
func (s *RatingService) Update(ctx context.Context, actor Actor, ratingID uint, nilai int, komentar string) (*models.Rating, error) {
	if nilai < 1 || nilai > 5 {
		return nil, apperrors.Validation("Rating value must be between 1 and 5")
	}

	var updated *models.Rating

	err := s.store.InTransaction(ctx, func(tx repositories.Store) error {
		rating, err := tx.Rating().FindByID(ctx, ratingID)
		if err != nil {
			return err
		}
		if rating == nil || rating.ReviewerID != actor.ID {
			return apperrors.NotFound("Rating not found or not authorized")
		}

		rating.Nilai = nilai
		rating.Komentar = komentar
		if err := tx.Rating().Save(ctx, rating); err != nil {
			return err
		}

		updated = rating
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, updated.ReviewedID, "Rating Diperbarui",
		fmt.Sprintf("Rating untuk transaksi #%d diperbarui menjadi %d bintang", updated.TransaksiID, updated.Nilai))
	return updated, nil
}

// Delete menghapus rating milik actor sendiri
func (s *RatingService) Delete(ctx context.Context, actor Actor, ratingID uint) error {
	return s.store.InTransaction(ctx, func(tx repositories.Store) error {
		rating, err := tx.Rating().FindByID(ctx, ratingID)
		if err != nil {
			return err
		}
		if rating == nil || rating.ReviewerID != actor.ID {
			return apperrors.NotFound("Rating not found or not authorized")
		}
		return tx.Rating().Delete(ctx, ratingID)
	})
}
