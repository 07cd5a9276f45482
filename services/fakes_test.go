package services_test

import (
	"context"
	"fmt"

	"campusmarket/models"
	"campusmarket/repositories"
)

// fakeStore adalah implementasi Store di atas map, dengan semantik
// rollback: error dari fn mengembalikan seluruh state ke snapshot.
type fakeStore struct {
	barang     map[uint]*models.Barang
	transaksi  map[uint]*models.Transaksi
	ratings    map[uint]*models.Rating
	notifikasi []models.Notifikasi

	nextTransaksiID uint
	nextRatingID    uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		barang:    make(map[uint]*models.Barang),
		transaksi: make(map[uint]*models.Transaksi),
		ratings:   make(map[uint]*models.Rating),
	}
}

func (s *fakeStore) Barang() repositories.BarangRepository         { return &fakeBarangRepo{s} }
func (s *fakeStore) Transaksi() repositories.TransaksiRepository   { return &fakeTransaksiRepo{s} }
func (s *fakeStore) Rating() repositories.RatingRepository         { return &fakeRatingRepo{s} }
func (s *fakeStore) Notifikasi() repositories.NotifikasiRepository { return &fakeNotifikasiRepo{s} }

func (s *fakeStore) InTransaction(ctx context.Context, fn func(repositories.Store) error) error {
	snapshot := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

type storeSnapshot struct {
	barang     map[uint]*models.Barang
	transaksi  map[uint]*models.Transaksi
	ratings    map[uint]*models.Rating
	notifikasi []models.Notifikasi
}

func (s *fakeStore) snapshot() storeSnapshot {
	snap := storeSnapshot{
		barang:     make(map[uint]*models.Barang, len(s.barang)),
		transaksi:  make(map[uint]*models.Transaksi, len(s.transaksi)),
		ratings:    make(map[uint]*models.Rating, len(s.ratings)),
		notifikasi: append([]models.Notifikasi(nil), s.notifikasi...),
	}
	for id, b := range s.barang {
		copied := *b
		snap.barang[id] = &copied
	}
	for id, t := range s.transaksi {
		copied := *t
		snap.transaksi[id] = &copied
	}
	for id, r := range s.ratings {
		copied := *r
		snap.ratings[id] = &copied
	}
	return snap
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.barang = snap.barang
	s.transaksi = snap.transaksi
	s.ratings = snap.ratings
	s.notifikasi = snap.notifikasi
}

func (s *fakeStore) addBarang(b models.Barang) *models.Barang {
	if b.Status == "" {
		b.Status = models.BarangTersedia
	}
	if b.Lifecycle == "" {
		b.Lifecycle = models.BarangAktif
	}
	s.barang[b.BarangID] = &b
	return &b
}

func (s *fakeStore) notificationsFor(userID uint) []models.Notifikasi {
	var out []models.Notifikasi
	for _, n := range s.notifikasi {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

type fakeBarangRepo struct{ s *fakeStore }

func (r *fakeBarangRepo) FindByID(ctx context.Context, id uint) (*models.Barang, error) {
	b, ok := r.s.barang[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBarangRepo) FindActiveForUpdate(ctx context.Context, id uint) (*models.Barang, error) {
	b, ok := r.s.barang[id]
	if !ok || b.Lifecycle != models.BarangAktif {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBarangRepo) SetStatus(ctx context.Context, id uint, status models.StatusBarang) error {
	b, ok := r.s.barang[id]
	if !ok {
		return fmt.Errorf("barang %d tidak ada", id)
	}
	b.Status = status
	return nil
}

type fakeTransaksiRepo struct{ s *fakeStore }

func (r *fakeTransaksiRepo) Create(ctx context.Context, transaksi *models.Transaksi) error {
	r.s.nextTransaksiID++
	transaksi.TransaksiID = r.s.nextTransaksiID
	copied := *transaksi
	r.s.transaksi[transaksi.TransaksiID] = &copied
	return nil
}

func (r *fakeTransaksiRepo) FindByID(ctx context.Context, id uint) (*models.Transaksi, error) {
	t, ok := r.s.transaksi[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTransaksiRepo) FindByIDForUpdate(ctx context.Context, id uint) (*models.Transaksi, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeTransaksiRepo) FindDetail(ctx context.Context, id uint) (*models.Transaksi, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeTransaksiRepo) UpdateStatus(ctx context.Context, id uint, status models.StatusTransaksi) error {
	t, ok := r.s.transaksi[id]
	if !ok {
		return fmt.Errorf("transaksi %d tidak ada", id)
	}
	t.Status = status
	return nil
}

func (r *fakeTransaksiRepo) ListForUser(ctx context.Context, filter repositories.TransaksiFilter) ([]models.Transaksi, int64, error) {
	var out []models.Transaksi
	for _, t := range r.s.transaksi {
		switch filter.Role {
		case "buyer":
			if t.BuyerID != filter.UserID {
				continue
			}
		case "seller":
			if t.SellerID != filter.UserID {
				continue
			}
		default:
			if t.BuyerID != filter.UserID && t.SellerID != filter.UserID {
				continue
			}
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

type fakeRatingRepo struct{ s *fakeStore }

func (r *fakeRatingRepo) Create(ctx context.Context, rating *models.Rating) error {
	r.s.nextRatingID++
	rating.RatingID = r.s.nextRatingID
	copied := *rating
	r.s.ratings[rating.RatingID] = &copied
	return nil
}

func (r *fakeRatingRepo) FindByID(ctx context.Context, id uint) (*models.Rating, error) {
	rating, ok := r.s.ratings[id]
	if !ok {
		return nil, nil
	}
	copied := *rating
	return &copied, nil
}

func (r *fakeRatingRepo) FindByTransaksiAndReviewer(ctx context.Context, transaksiID, reviewerID uint) (*models.Rating, error) {
	for _, rating := range r.s.ratings {
		if rating.TransaksiID == transaksiID && rating.ReviewerID == reviewerID {
			copied := *rating
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRatingRepo) FindByTransaksi(ctx context.Context, transaksiID uint) (*models.Rating, error) {
	for _, rating := range r.s.ratings {
		if rating.TransaksiID == transaksiID {
			copied := *rating
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRatingRepo) ListForReviewed(ctx context.Context, reviewedID uint, limit, offset int) ([]models.Rating, int64, error) {
	var out []models.Rating
	for _, rating := range r.s.ratings {
		if rating.ReviewedID == reviewedID {
			out = append(out, *rating)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeRatingRepo) StatsForReviewed(ctx context.Context, reviewedID uint) (*models.RatingStats, error) {
	stats := &models.RatingStats{
		AverageRating: "0.0",
		Distribution: map[string]int64{
			"1_star": 0, "2_star": 0, "3_star": 0, "4_star": 0, "5_star": 0,
		},
	}
	var sum int64
	for _, rating := range r.s.ratings {
		if rating.ReviewedID != reviewedID {
			continue
		}
		stats.TotalRatings++
		sum += int64(rating.Nilai)
		stats.Distribution[fmt.Sprintf("%d_star", rating.Nilai)]++
	}
	if stats.TotalRatings > 0 {
		stats.AverageRating = fmt.Sprintf("%.1f", float64(sum)/float64(stats.TotalRatings))
	}
	return stats, nil
}

func (r *fakeRatingRepo) Save(ctx context.Context, rating *models.Rating) error {
	if _, ok := r.s.ratings[rating.RatingID]; !ok {
		return fmt.Errorf("rating %d tidak ada", rating.RatingID)
	}
	copied := *rating
	r.s.ratings[rating.RatingID] = &copied
	return nil
}

func (r *fakeRatingRepo) Delete(ctx context.Context, id uint) error {
	delete(r.s.ratings, id)
	return nil
}

type fakeNotifikasiRepo struct{ s *fakeStore }

func (r *fakeNotifikasiRepo) Create(ctx context.Context, notifikasi *models.Notifikasi) error {
	notifikasi.NotifikasiID = uint(len(r.s.notifikasi) + 1)
	r.s.notifikasi = append(r.s.notifikasi, *notifikasi)
	return nil
}
