// Package services berisi inti marketplace: state machine transaksi,
// penjaga status barang, dan gerbang rating. Semua mutasi berjalan di
// dalam satu transaksi database lewat repositories.Store.
package services

import (
	"context"
	"fmt"

	"campusmarket/apperrors"
	"campusmarket/models"
	"campusmarket/repositories"
)

// Actor adalah identitas terotentikasi yang mendorong sebuah operasi
type Actor struct {
	ID   uint
	Role models.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

type TransaksiService struct {
	store    repositories.Store
	notifier Notifier
}

func NewTransaksiService(store repositories.Store, notifier Notifier) *TransaksiService {
	return &TransaksiService{store: store, notifier: notifier}
}

type CreateTransaksiInput struct {
	BarangID         uint
	MetodePembayaran string
	Catatan          string
}

// Create membuat transaksi pending untuk barang yang masih tersedia dan
// memesan barangnya dalam satu unit atomik. Baris barang dikunci selama
// pengecekan supaya dua pembeli tidak bisa sama-sama berhasil.
func (s *TransaksiService) Create(ctx context.Context, actor Actor, input CreateTransaksiInput) (*models.Transaksi, error) {
	var created *models.Transaksi

	err := s.store.InTransaction(ctx, func(tx repositories.Store) error {
		barang, err := tx.Barang().FindActiveForUpdate(ctx, input.BarangID)
		if err != nil {
			return err
		}
		if barang == nil {
			return apperrors.NotFound("Item not found or not available")
		}
		if barang.Status != models.BarangTersedia {
			return apperrors.Conflict("Item is no longer available")
		}
		if barang.UserID == actor.ID {
			return apperrors.InvalidOperation("You cannot buy your own item")
		}

		transaksi := &models.Transaksi{
			BarangID:         barang.BarangID,
			SellerID:         barang.UserID,
			BuyerID:          actor.ID,
			MetodePembayaran: input.MetodePembayaran,
			TotalHarga:       barang.Harga, // snapshot harga, tidak pernah dihitung ulang
			Status:           models.TransaksiPending,
			Catatan:          input.Catatan,
		}
		if err := tx.Transaksi().Create(ctx, transaksi); err != nil {
			return err
		}
		if err := tx.Barang().SetStatus(ctx, barang.BarangID, models.BarangDipesan); err != nil {
			return err
		}

		created = transaksi
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, created.SellerID, "Pesanan Baru",
		fmt.Sprintf("Barang Anda dipesan melalui transaksi #%d", created.TransaksiID))
	return created, nil
}

// UpdateStatus menjalankan satu transisi state machine. Penulisan status
// transaksi dan status barang terjadi dalam satu transaksi database;
// baris transaksi dikunci supaya transisi basi dari state sumber yang
// sama gagal dengan InvalidOperationError.
func (s *TransaksiService) UpdateStatus(ctx context.Context, actor Actor, transaksiID uint, requested models.StatusTransaksi) (*models.Transaksi, error) {
	var updated *models.Transaksi

	err := s.store.InTransaction(ctx, func(tx repositories.Store) error {
		transaksi, err := tx.Transaksi().FindByIDForUpdate(ctx, transaksiID)
		if err != nil {
			return err
		}
		if transaksi == nil {
			return apperrors.NotFound("Transaction not found")
		}

		isBuyer := transaksi.BuyerID == actor.ID
		isSeller := transaksi.SellerID == actor.ID
		if !isBuyer && !isSeller && !actor.IsAdmin() {
			return apperrors.Authorization("You do not have permission to update this transaction")
		}

		if err := validateTransition(transaksi.Status, requested, isBuyer, isSeller, actor.IsAdmin()); err != nil {
			return err
		}

		if err := tx.Transaksi().UpdateStatus(ctx, transaksiID, requested); err != nil {
			return err
		}

		// transisi terminal juga menggerakkan status barang
		switch requested {
		case models.TransaksiSelesai:
			if err := tx.Barang().SetStatus(ctx, transaksi.BarangID, models.BarangTerjual); err != nil {
				return err
			}
		case models.TransaksiDibatalkan:
			if err := tx.Barang().SetStatus(ctx, transaksi.BarangID, models.BarangTersedia); err != nil {
				return err
			}
		}

		transaksi.Status = requested
		updated = transaksi
		return nil
	})
	if err != nil {
		return nil, err
	}

	pesan := fmt.Sprintf("Status transaksi #%d berubah menjadi %s", updated.TransaksiID, updated.Status)
	for _, userID := range []uint{updated.BuyerID, updated.SellerID} {
		if userID != actor.ID {
			s.notifier.Notify(ctx, userID, "Update Transaksi", pesan)
		}
	}
	return updated, nil
}

// GetByID mengembalikan detail transaksi untuk pesertanya atau admin
func (s *TransaksiService) GetByID(ctx context.Context, actor Actor, transaksiID uint) (*models.Transaksi, error) {
	transaksi, err := s.store.Transaksi().FindDetail(ctx, transaksiID)
	if err != nil {
		return nil, err
	}
	if transaksi == nil {
		return nil, apperrors.NotFound("Transaction not found")
	}
	if !transaksi.Participant(actor.ID) && !actor.IsAdmin() {
		return nil, apperrors.Authorization("You do not have permission to view this transaction")
	}
	return transaksi, nil
}

// ListForUser mengembalikan transaksi milik actor sebagai pembeli,
// penjual, atau keduanya
func (s *TransaksiService) ListForUser(ctx context.Context, actor Actor, filter repositories.TransaksiFilter) ([]models.Transaksi, int64, error) {
	filter.UserID = actor.ID
	return s.store.Transaksi().ListForUser(ctx, filter)
}
