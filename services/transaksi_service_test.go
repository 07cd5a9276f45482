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

const (
	sellerID = uint(1)
	buyerID  = uint(2)
	otherID  = uint(3)
	adminID  = uint(9)
)

var (
	seller = services.Actor{ID: sellerID, Role: models.RoleUser}
	buyer  = services.Actor{ID: buyerID, Role: models.RoleUser}
	other  = services.Actor{ID: otherID, Role: models.RoleUser}
	admin  = services.Actor{ID: adminID, Role: models.RoleAdmin}
)

func newTransaksiFixture(t *testing.T) (*fakeStore, *services.TransaksiService) {
	t.Helper()
	store := newFakeStore()
	store.addBarang(models.Barang{
		BarangID: 10,
		UserID:   sellerID,
		Judul:    "Kalkulus jilid 1",
		Harga:    decimal.NewFromInt(100000),
	})
	svc := services.NewTransaksiService(store, services.NewDBNotifier(store))
	return store, svc
}

func createPending(t *testing.T, svc *services.TransaksiService) *models.Transaksi {
	t.Helper()
	transaksi, err := svc.Create(context.Background(), buyer, services.CreateTransaksiInput{
		BarangID:         10,
		MetodePembayaran: "transfer bank",
	})
	require.NoError(t, err)
	return transaksi
}

func TestCreateTransaksi(t *testing.T) {
	store, svc := newTransaksiFixture(t)

	transaksi := createPending(t, svc)

	assert.Equal(t, models.TransaksiPending, transaksi.Status)
	assert.Equal(t, sellerID, transaksi.SellerID)
	assert.Equal(t, buyerID, transaksi.BuyerID)
	assert.True(t, transaksi.TotalHarga.Equal(decimal.NewFromInt(100000)),
		"total harga harus snapshot harga barang")

	assert.Equal(t, models.BarangDipesan, store.barang[10].Status)
	assert.NotEmpty(t, store.notificationsFor(sellerID), "penjual diberi tahu ada pesanan")
}

func TestCreateTransaksiItemMissing(t *testing.T) {
	_, svc := newTransaksiFixture(t)

	_, err := svc.Create(context.Background(), buyer, services.CreateTransaksiInput{BarangID: 999})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCreateTransaksiItemArchived(t *testing.T) {
	store, svc := newTransaksiFixture(t)
	store.barang[10].Lifecycle = models.BarangDiarsipkan

	_, err := svc.Create(context.Background(), buyer, services.CreateTransaksiInput{BarangID: 10})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCreateTransaksiDoubleBooking(t *testing.T) {
	_, svc := newTransaksiFixture(t)

	createPending(t, svc)

	// pembeli kedua mendapati barang sudah dipesan
	_, err := svc.Create(context.Background(), other, services.CreateTransaksiInput{BarangID: 10})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestCreateTransaksiSelfPurchase(t *testing.T) {
	store, svc := newTransaksiFixture(t)

	_, err := svc.Create(context.Background(), seller, services.CreateTransaksiInput{BarangID: 10})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidOperation))
	assert.Equal(t, models.BarangTersedia, store.barang[10].Status, "gagal berarti tidak ada reservasi")
}

func TestUpdateStatusHappyPath(t *testing.T) {
	store, svc := newTransaksiFixture(t)
	transaksi := createPending(t, svc)
	ctx := context.Background()

	steps := []struct {
		actor  services.Actor
		status models.StatusTransaksi
	}{
		{buyer, models.TransaksiDibayar},
		{seller, models.TransaksiDiproses},
		{seller, models.TransaksiDikirim},
		{buyer, models.TransaksiSelesai},
	}
	for _, step := range steps {
		updated, err := svc.UpdateStatus(ctx, step.actor, transaksi.TransaksiID, step.status)
		require.NoError(t, err, "transisi ke %s", step.status)
		assert.Equal(t, step.status, updated.Status)
	}

	assert.Equal(t, models.BarangTerjual, store.barang[10].Status)
}

func TestUpdateStatusCompletionOnlyByBuyer(t *testing.T) {
	store, svc := newTransaksiFixture(t)
	transaksi := createPending(t, svc)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, buyer, transaksi.TransaksiID, models.TransaksiDibayar)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, seller, transaksi.TransaksiID, models.TransaksiDiproses)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, seller, transaksi.TransaksiID, models.TransaksiDikirim)
	require.NoError(t, err)

	// penjual tidak boleh menyelesaikan transaksi
	_, err = svc.UpdateStatus(ctx, seller, transaksi.TransaksiID, models.TransaksiSelesai)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	assert.Equal(t, models.TransaksiDikirim, store.transaksi[transaksi.TransaksiID].Status)

	_, err = svc.UpdateStatus(ctx, buyer, transaksi.TransaksiID, models.TransaksiSelesai)
	require.NoError(t, err)
	assert.Equal(t, models.BarangTerjual, store.barang[10].Status)
}

func TestUpdateStatusCancelReleasesItem(t *testing.T) {
	store, svc := newTransaksiFixture(t)
	transaksi := createPending(t, svc)

	_, err := svc.UpdateStatus(context.Background(), seller, transaksi.TransaksiID, models.TransaksiDibatalkan)
	require.NoError(t, err)

	assert.Equal(t, models.BarangTersedia, store.barang[10].Status)
}

func TestUpdateStatusOutsiderDenied(t *testing.T) {
	_, svc := newTransaksiFixture(t)
	transaksi := createPending(t, svc)

	for _, status := range []models.StatusTransaksi{
		models.TransaksiDibayar, models.TransaksiDibatalkan, models.TransaksiSelesai,
	} {
		_, err := svc.UpdateStatus(context.Background(), other, transaksi.TransaksiID, status)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization), "status %s", status)
	}
}

func TestUpdateStatusRoleMismatch(t *testing.T) {
	_, svc := newTransaksiFixture(t)
	transaksi := createPending(t, svc)

	// penjual mencoba menandai dibayar
	_, err := svc.UpdateStatus(context.Background(), seller, transaksi.TransaksiID, models.TransaksiDibayar)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))

	// pembeli mencoba memproses
	_, err = svc.UpdateStatus(context.Background(), buyer, transaksi.TransaksiID, models.TransaksiDiproses)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidOperation),
		"diproses dari pending gagal karena state, bukan peran")
}

func TestUpdateStatusAdminOverridesRole(t *testing.T) {
	_, svc := newTransaksiFixture(t)
	transaksi := createPending(t, svc)

	updated, err := svc.UpdateStatus(context.Background(), admin, transaksi.TransaksiID, models.TransaksiDibayar)
	require.NoError(t, err)
	assert.Equal(t, models.TransaksiDibayar, updated.Status)
}

func TestUpdateStatusStaleTransition(t *testing.T) {
	_, svc := newTransaksiFixture(t)
	transaksi := createPending(t, svc)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, buyer, transaksi.TransaksiID, models.TransaksiDibayar)
	require.NoError(t, err)

	// transisi kedua dari state sumber yang sama
	_, err = svc.UpdateStatus(ctx, buyer, transaksi.TransaksiID, models.TransaksiDibayar)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidOperation))
}

func TestUpdateStatusTerminalIsImmutable(t *testing.T) {
	store, svc := newTransaksiFixture(t)
	transaksi := createPending(t, svc)
	ctx := context.Background()

	for _, step := range []struct {
		actor  services.Actor
		status models.StatusTransaksi
	}{
		{buyer, models.TransaksiDibayar},
		{seller, models.TransaksiDiproses},
		{seller, models.TransaksiDikirim},
		{buyer, models.TransaksiSelesai},
	} {
		_, err := svc.UpdateStatus(ctx, step.actor, transaksi.TransaksiID, step.status)
		require.NoError(t, err)
	}

	// membatalkan transaksi selesai harus gagal, bukan diam-diam no-op
	_, err := svc.UpdateStatus(ctx, buyer, transaksi.TransaksiID, models.TransaksiDibatalkan)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidOperation))
	assert.Equal(t, models.BarangTerjual, store.barang[10].Status, "barang tetap terjual")
}

func TestUpdateStatusUnknownTransaction(t *testing.T) {
	_, svc := newTransaksiFixture(t)

	_, err := svc.UpdateStatus(context.Background(), buyer, 404, models.TransaksiDibayar)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUpdateStatusNotifiesCounterparty(t *testing.T) {
	store, svc := newTransaksiFixture(t)
	transaksi := createPending(t, svc)
	before := len(store.notificationsFor(sellerID))

	_, err := svc.UpdateStatus(context.Background(), buyer, transaksi.TransaksiID, models.TransaksiDibayar)
	require.NoError(t, err)

	assert.Len(t, store.notificationsFor(sellerID), before+1)
	assert.Empty(t, store.notificationsFor(buyerID), "aktor sendiri tidak diberi tahu")
}

func TestGetByIDRestrictedToParticipants(t *testing.T) {
	_, svc := newTransaksiFixture(t)
	transaksi := createPending(t, svc)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, buyer, transaksi.TransaksiID)
	assert.NoError(t, err)
	_, err = svc.GetByID(ctx, seller, transaksi.TransaksiID)
	assert.NoError(t, err)
	_, err = svc.GetByID(ctx, admin, transaksi.TransaksiID)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, other, transaksi.TransaksiID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}
