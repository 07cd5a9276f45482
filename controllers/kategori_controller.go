package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusmarket/models"
	"campusmarket/utils"
)

type KategoriController struct {
	db *gorm.DB
}

func NewKategoriController(db *gorm.DB) *KategoriController {
	return &KategoriController{db: db}
}

func (ctl *KategoriController) GetAll(c *fiber.Ctx) error {
	var kategori []models.Kategori
	if err := ctl.db.Order("nama_kategori ASC").Find(&kategori).Error; err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Categories retrieved successfully", kategori)
}

func (ctl *KategoriController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid category id", nil)
	}

	var kategori models.Kategori
	if err := ctl.db.First(&kategori, "kategori_id = ?", id).Error; err != nil {
		return utils.Error(c, fiber.StatusNotFound, "Category not found", nil)
	}
	return utils.Success(c, fiber.StatusOK, "Category retrieved successfully", kategori)
}

type kategoriRequest struct {
	NamaKategori string `json:"nama_kategori"`
	Deskripsi    string `json:"deskripsi"`
}

func (ctl *KategoriController) Create(c *fiber.Ctx) error {
	var req kategoriRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if req.NamaKategori == "" {
		return utils.Error(c, fiber.StatusBadRequest, "Category name is required", nil)
	}

	kategori := models.Kategori{
		NamaKategori: req.NamaKategori,
		Deskripsi:    req.Deskripsi,
	}
	if err := ctl.db.Create(&kategori).Error; err != nil {
		return utils.Error(c, fiber.StatusConflict, "Category already exists", nil)
	}
	return utils.Success(c, fiber.StatusCreated, "Category created successfully", kategori)
}

func (ctl *KategoriController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid category id", nil)
	}

	var kategori models.Kategori
	if err := ctl.db.First(&kategori, "kategori_id = ?", id).Error; err != nil {
		return utils.Error(c, fiber.StatusNotFound, "Category not found", nil)
	}

	var req kategoriRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if req.NamaKategori != "" {
		kategori.NamaKategori = req.NamaKategori
	}
	if req.Deskripsi != "" {
		kategori.Deskripsi = req.Deskripsi
	}

	if err := ctl.db.Save(&kategori).Error; err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Category updated successfully", kategori)
}

func (ctl *KategoriController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid category id", nil)
	}

	var refCount int64
	if err := ctl.db.Model(&models.Barang{}).Where("kategori_id = ?", id).Count(&refCount).Error; err != nil {
		return utils.HandleError(c, err)
	}
	if refCount > 0 {
		return utils.Error(c, fiber.StatusConflict, "Category still has items", nil)
	}

	result := ctl.db.Delete(&models.Kategori{}, "kategori_id = ?", id)
	if result.Error != nil {
		return utils.HandleError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.Error(c, fiber.StatusNotFound, "Category not found", nil)
	}
	return utils.Success(c, fiber.StatusOK, "Category deleted successfully", nil)
}
