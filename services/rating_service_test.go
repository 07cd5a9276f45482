package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmarket/apperrors"
	"campusmarket/models"
	"campusmarket/services"
)

// newCompletedFixture menyiapkan transaksi yang sudah selesai lewat jalur
// state machine yang sebenarnya
func newCompletedFixture(t *testing.T) (*fakeStore, *services.RatingService, *models.Transaksi) {
	t.Helper()
	store := newFakeStore()
	store.addBarang(models.Barang{
		BarangID: 10,
		UserID:   sellerID,
		Judul:    "Sepeda lipat",
		Harga:    decimal.NewFromInt(750000),
	})

	notifier := services.NewDBNotifier(store)
	transaksiSvc := services.NewTransaksiService(store, notifier)
	ctx := context.Background()

	transaksi, err := transaksiSvc.Create(ctx, buyer, services.CreateTransaksiInput{BarangID: 10})
	require.NoError(t, err)
	for _, step := range []struct {
		actor  services.Actor
		status models.StatusTransaksi
	}{
		{buyer, models.TransaksiDibayar},
		{seller, models.TransaksiDiproses},
		{seller, models.TransaksiDikirim},
		{buyer, models.TransaksiSelesai},
	} {
		transaksi, err = transaksiSvc.UpdateStatus(ctx, step.actor, transaksi.TransaksiID, step.status)
		require.NoError(t, err)
	}

	return store, services.NewRatingService(store, notifier), transaksi
}

func TestCreateRating(t *testing.T) {
	store, svc, transaksi := newCompletedFixture(t)

	rating, err := svc.Create(context.Background(), buyer, services.CreateRatingInput{
		TransaksiID: transaksi.TransaksiID,
		Nilai:       5,
		Komentar:    "penjual responsif",
	})
	require.NoError(t, err)

	assert.Equal(t, buyerID, rating.ReviewerID)
	assert.Equal(t, sellerID, rating.ReviewedID, "yang dinilai adalah lawan transaksi")
	assert.Equal(t, 5, rating.Nilai)
	assert.NotEmpty(t, store.notificationsFor(sellerID))
}

func TestCreateRatingBeforeCompletion(t *testing.T) {
	store := newFakeStore()
	store.addBarang(models.Barang{BarangID: 10, UserID: sellerID, Harga: decimal.NewFromInt(50000)})
	notifier := services.NewDBNotifier(store)
	transaksiSvc := services.NewTransaksiService(store, notifier)
	ratingSvc := services.NewRatingService(store, notifier)
	ctx := context.Background()

	transaksi, err := transaksiSvc.Create(ctx, buyer, services.CreateTransaksiInput{BarangID: 10})
	require.NoError(t, err)

	_, err = ratingSvc.Create(ctx, buyer, services.CreateRatingInput{TransaksiID: transaksi.TransaksiID, Nilai: 4})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCreateRatingOutsiderDenied(t *testing.T) {
	_, svc, transaksi := newCompletedFixture(t)

	_, err := svc.Create(context.Background(), other, services.CreateRatingInput{
		TransaksiID: transaksi.TransaksiID,
		Nilai:       1,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestCreateRatingScoreOutOfRange(t *testing.T) {
	_, svc, transaksi := newCompletedFixture(t)
	ctx := context.Background()

	for _, nilai := range []int{0, 6, -1} {
		_, err := svc.Create(ctx, buyer, services.CreateRatingInput{
			TransaksiID: transaksi.TransaksiID,
			Nilai:       nilai,
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), "nilai %d", nilai)
	}
}

func TestCreateRatingOncePerReviewer(t *testing.T) {
	_, svc, transaksi := newCompletedFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, buyer, services.CreateRatingInput{TransaksiID: transaksi.TransaksiID, Nilai: 5})
	require.NoError(t, err)

	// percobaan kedua oleh reviewer yang sama
	_, err = svc.Create(ctx, buyer, services.CreateRatingInput{TransaksiID: transaksi.TransaksiID, Nilai: 3})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	// penjual masih boleh menilai pembeli
	rating, err := svc.Create(ctx, seller, services.CreateRatingInput{TransaksiID: transaksi.TransaksiID, Nilai: 4})
	require.NoError(t, err)
	assert.Equal(t, buyerID, rating.ReviewedID)
}

func TestUpdateRatingAuthorOnly(t *testing.T) {
	_, svc, transaksi := newCompletedFixture(t)
	ctx := context.Background()

	rating, err := svc.Create(ctx, buyer, services.CreateRatingInput{TransaksiID: transaksi.TransaksiID, Nilai: 5})
	require.NoError(t, err)

	_, err = svc.Update(ctx, seller, rating.RatingID, 1, "bukan rating saya")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	updated, err := svc.Update(ctx, buyer, rating.RatingID, 3, "revisi")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Nilai)
}

func TestDeleteRatingAuthorOnly(t *testing.T) {
	store, svc, transaksi := newCompletedFixture(t)
	ctx := context.Background()

	rating, err := svc.Create(ctx, buyer, services.CreateRatingInput{TransaksiID: transaksi.TransaksiID, Nilai: 5})
	require.NoError(t, err)

	err = svc.Delete(ctx, seller, rating.RatingID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	require.NoError(t, svc.Delete(ctx, buyer, rating.RatingID))
	assert.Empty(t, store.ratings)
}

func TestRatingStats(t *testing.T) {
	_, svc, transaksi := newCompletedFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, buyer, services.CreateRatingInput{TransaksiID: transaksi.TransaksiID, Nilai: 5})
	require.NoError(t, err)

	stats, err := svc.StatsForUser(ctx, sellerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRatings)
	assert.Equal(t, "5.0", stats.AverageRating)
	assert.Equal(t, int64(1), stats.Distribution["5_star"])
}
