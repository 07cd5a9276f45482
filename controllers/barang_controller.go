package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"campusmarket/middleware"
	"campusmarket/models"
	"campusmarket/storage"
	"campusmarket/utils"
)

type BarangController struct {
	db      *gorm.DB
	storage storage.ObjectStorage
}

func NewBarangController(db *gorm.DB, objectStorage storage.ObjectStorage) *BarangController {
	return &BarangController{db: db, storage: objectStorage}
}

// GetAll menampilkan barang tersedia dengan filter dan pagination
func (ctl *BarangController) GetAll(c *fiber.Ctx) error {
	page, limit, offset := utils.PageParams(c)

	query := ctl.db.Model(&models.Barang{}).
		Where("lifecycle = ? AND status = ?", models.BarangAktif, models.BarangTersedia)

	if kategoriID := c.QueryInt("kategori_id", 0); kategoriID > 0 {
		query = query.Where("kategori_id = ?", kategoriID)
	}
	if kondisi := c.Query("kondisi"); kondisi != "" {
		query = query.Where("kondisi = ?", kondisi)
	}
	if minHarga := c.Query("min_harga"); minHarga != "" {
		query = query.Where("harga >= ?", minHarga)
	}
	if maxHarga := c.Query("max_harga"); maxHarga != "" {
		query = query.Where("harga <= ?", maxHarga)
	}
	if lokasi := c.Query("lokasi"); lokasi != "" {
		query = query.Where("lokasi LIKE ?", "%"+lokasi+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("judul LIKE ? OR deskripsi LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.HandleError(c, err)
	}

	var barang []models.Barang
	err := query.
		Preload("Pemilik").
		Preload("Kategori").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&barang).Error
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessWithMeta(c, fiber.StatusOK, "Items retrieved successfully",
		barang, utils.Paginate(total, page, limit))
}

func (ctl *BarangController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid item id", nil)
	}

	var barang models.Barang
	findErr := ctl.db.
		Preload("Pemilik").
		Preload("Kategori").
		Where("barang_id = ? AND lifecycle = ?", id, models.BarangAktif).
		First(&barang).Error
	if findErr != nil {
		return utils.Error(c, fiber.StatusNotFound, "Item not found", nil)
	}

	// penghitung views, best effort
	ctl.db.Model(&barang).UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	barang.ViewsCount++

	return utils.Success(c, fiber.StatusOK, "Item retrieved successfully", barang)
}

// Create membuat barang baru milik user login, dengan foto multipart
// yang diunggah ke object storage
func (ctl *BarangController) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	judul := c.FormValue("judul")
	deskripsi := c.FormValue("deskripsi")
	lokasi := c.FormValue("lokasi")
	kategoriID := parseFormUint(c.FormValue("kategori_id"))

	if judul == "" || deskripsi == "" || kategoriID == 0 || c.FormValue("harga") == "" || c.FormValue("kondisi") == "" {
		return utils.Error(c, fiber.StatusBadRequest, "Please provide all required fields", nil)
	}

	harga, err := decimal.NewFromString(c.FormValue("harga"))
	if err != nil || harga.IsNegative() {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid price", nil)
	}
	kondisi, ok := models.ParseKondisi(c.FormValue("kondisi"))
	if !ok {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid item condition", nil)
	}

	var kategori models.Kategori
	if err := ctl.db.First(&kategori, "kategori_id = ?", kategoriID).Error; err != nil {
		return utils.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("Kategori ID %d not found", kategoriID), nil)
	}

	foto, err := ctl.uploadPhotos(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	barang := models.Barang{
		UserID:     user.UserID,
		KategoriID: kategoriID,
		Judul:      judul,
		Deskripsi:  deskripsi,
		Foto:       foto,
		Harga:      harga,
		Lokasi:     lokasi,
		Kondisi:    kondisi,
		Status:     models.BarangTersedia,
		Lifecycle:  models.BarangAktif,
	}
	if err := ctl.db.Create(&barang).Error; err != nil {
		return utils.HandleError(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, "Item created successfully", barang)
}

// Update mengubah atribut barang. Status ketersediaan sengaja tidak bisa
// diubah lewat sini; itu wilayah state machine transaksi.
func (ctl *BarangController) Update(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid item id", nil)
	}

	var barang models.Barang
	if err := ctl.db.Where("barang_id = ? AND lifecycle <> ?", id, models.BarangDihapus).First(&barang).Error; err != nil {
		return utils.Error(c, fiber.StatusNotFound, "Item not found", nil)
	}
	if barang.UserID != user.UserID && user.Role != models.RoleAdmin {
		return utils.Error(c, fiber.StatusForbidden, "You do not have permission to update this item", nil)
	}

	if judul := c.FormValue("judul"); judul != "" {
		barang.Judul = judul
	}
	if deskripsi := c.FormValue("deskripsi"); deskripsi != "" {
		barang.Deskripsi = deskripsi
	}
	if lokasi := c.FormValue("lokasi"); lokasi != "" {
		barang.Lokasi = lokasi
	}
	if kategoriID := parseFormUint(c.FormValue("kategori_id")); kategoriID != 0 {
		var kategori models.Kategori
		if err := ctl.db.First(&kategori, "kategori_id = ?", kategoriID).Error; err != nil {
			return utils.Error(c, fiber.StatusBadRequest,
				fmt.Sprintf("Kategori ID %d not found", kategoriID), nil)
		}
		barang.KategoriID = kategoriID
	}
	if rawHarga := c.FormValue("harga"); rawHarga != "" {
		harga, err := decimal.NewFromString(rawHarga)
		if err != nil || harga.IsNegative() {
			return utils.Error(c, fiber.StatusBadRequest, "Invalid price", nil)
		}
		barang.Harga = harga
	}
	if rawKondisi := c.FormValue("kondisi"); rawKondisi != "" {
		kondisi, ok := models.ParseKondisi(rawKondisi)
		if !ok {
			return utils.Error(c, fiber.StatusBadRequest, "Invalid item condition", nil)
		}
		barang.Kondisi = kondisi
	}

	// hapus foto lama yang diminta
	currentFoto := barang.Foto
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, url := range form.Value["hapus_foto"] {
			if objectID, ok := storage.ObjectIDFromURL(url); ok {
				if err := ctl.storage.Delete(c.Context(), objectID); err != nil {
					log.Printf("⚠️ Gagal menghapus foto %s: %v", objectID, err)
				}
			}
			currentFoto = removeURL(currentFoto, url)
		}
	}

	newFoto, err := ctl.uploadPhotos(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	barang.Foto = append(currentFoto, newFoto...)

	if err := ctl.db.Save(&barang).Error; err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Item updated successfully", barang)
}

// Archive menyembunyikan barang dari listing tanpa menghapus datanya
func (ctl *BarangController) Archive(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid item id", nil)
	}

	var barang models.Barang
	if err := ctl.db.Where("barang_id = ? AND lifecycle = ?", id, models.BarangAktif).First(&barang).Error; err != nil {
		return utils.Error(c, fiber.StatusNotFound, "Item not found", nil)
	}
	if barang.UserID != user.UserID && user.Role != models.RoleAdmin {
		return utils.Error(c, fiber.StatusForbidden, "You do not have permission to delete this item", nil)
	}
	if barang.Status == models.BarangDipesan {
		return utils.Error(c, fiber.StatusBadRequest, "Item has an active transaction", nil)
	}

	now := time.Now()
	barang.Lifecycle = models.BarangDiarsipkan
	barang.ArchivedAt = &now
	if err := ctl.db.Save(&barang).Error; err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Item deleted successfully", nil)
}

// Purge adalah penghapusan permanen khusus admin, termasuk membersihkan
// foto di object storage. Baris barang yang masih dirujuk transaksi tidak
// dihapus fisik, hanya ditandai dihapus.
func (ctl *BarangController) Purge(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid item id", nil)
	}

	var barang models.Barang
	if err := ctl.db.First(&barang, "barang_id = ?", id).Error; err != nil {
		return utils.Error(c, fiber.StatusNotFound, "Item not found", nil)
	}

	for _, url := range barang.Foto {
		if objectID, ok := storage.ObjectIDFromURL(url); ok {
			if err := ctl.storage.Delete(c.Context(), objectID); err != nil {
				log.Printf("⚠️ Gagal menghapus foto %s: %v", objectID, err)
			}
		}
	}

	var refCount int64
	if err := ctl.db.Model(&models.Transaksi{}).Where("barang_id = ?", barang.BarangID).Count(&refCount).Error; err != nil {
		return utils.HandleError(c, err)
	}

	if refCount > 0 {
		now := time.Now()
		barang.Lifecycle = models.BarangDihapus
		barang.ArchivedAt = &now
		barang.Foto = nil
		if err := ctl.db.Save(&barang).Error; err != nil {
			return utils.HandleError(c, err)
		}
	} else {
		if err := ctl.db.Delete(&barang).Error; err != nil {
			return utils.HandleError(c, err)
		}
	}

	return utils.Success(c, fiber.StatusOK, "Item permanently deleted", nil)
}

// GetMine menampilkan semua barang milik user login, apapun statusnya
func (ctl *BarangController) GetMine(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	page, limit, offset := utils.PageParams(c)

	query := ctl.db.Model(&models.Barang{}).
		Where("user_id = ? AND lifecycle <> ?", user.UserID, models.BarangDihapus)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.HandleError(c, err)
	}

	var barang []models.Barang
	err := query.
		Preload("Kategori").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&barang).Error
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessWithMeta(c, fiber.StatusOK, "Items retrieved successfully",
		barang, utils.Paginate(total, page, limit))
}

func (ctl *BarangController) uploadPhotos(c *fiber.Ctx) (models.FotoList, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}

	var foto models.FotoList
	for _, fileHeader := range form.File["foto"] {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}

		objectName := fmt.Sprintf("barang_%s_%s", uuid.NewString(), fileHeader.Filename)
		objectID, err := ctl.storage.Upload(c.Context(), objectName, file)
		file.Close()
		if err != nil {
			return nil, err
		}
		foto = append(foto, storage.URLFor(objectID))
	}
	return foto, nil
}

func parseFormUint(value string) uint {
	var parsed uint
	fmt.Sscanf(value, "%d", &parsed)
	return parsed
}

func removeURL(list models.FotoList, url string) models.FotoList {
	out := list[:0]
	for _, item := range list {
		if item != url {
			out = append(out, item)
		}
	}
	return out
}
