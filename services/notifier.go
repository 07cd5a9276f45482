package services

import (
	"context"
	"log"

	"campusmarket/models"
	"campusmarket/repositories"
)

// Notifier mengirim notifikasi fire-and-forget. Dipanggil setelah
// transaksi database commit; kegagalan tidak pernah menjalar ke caller.
type Notifier interface {
	Notify(ctx context.Context, userID uint, judul, pesan string)
}

type dbNotifier struct {
	store repositories.Store
}

// NewDBNotifier menulis notifikasi sebagai baris tabel notifikasi
func NewDBNotifier(store repositories.Store) Notifier {
	return &dbNotifier{store: store}
}

func (n *dbNotifier) Notify(ctx context.Context, userID uint, judul, pesan string) {
	err := n.store.Notifikasi().Create(ctx, &models.Notifikasi{
		UserID: userID,
		Judul:  judul,
		Pesan:  pesan,
	})
	if err != nil {
		log.Printf("⚠️ Gagal mengirim notifikasi ke user %d: %v", userID, err)
	}
}
