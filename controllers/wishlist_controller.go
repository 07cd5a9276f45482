package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusmarket/middleware"
	"campusmarket/models"
	"campusmarket/utils"
)

type WishlistController struct {
	db *gorm.DB
}

func NewWishlistController(db *gorm.DB) *WishlistController {
	return &WishlistController{db: db}
}

type addWishlistRequest struct {
	BarangID uint `json:"barang_id"`
}

func (ctl *WishlistController) Add(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req addWishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	var barang models.Barang
	if err := ctl.db.Where("barang_id = ? AND lifecycle = ?", req.BarangID, models.BarangAktif).First(&barang).Error; err != nil {
		return utils.Error(c, fiber.StatusNotFound, "Item not found", nil)
	}

	var existing models.Wishlist
	if err := ctl.db.Where("user_id = ? AND barang_id = ?", user.UserID, req.BarangID).First(&existing).Error; err == nil {
		return utils.Error(c, fiber.StatusConflict, "Item already in wishlist", nil)
	}

	wishlist := models.Wishlist{
		UserID:   user.UserID,
		BarangID: req.BarangID,
	}
	if err := ctl.db.Create(&wishlist).Error; err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, "Item added to wishlist successfully", wishlist)
}

func (ctl *WishlistController) GetAll(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	page, limit, offset := utils.PageParams(c)

	query := ctl.db.Model(&models.Wishlist{}).Where("user_id = ?", user.UserID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.HandleError(c, err)
	}

	var wishlist []models.Wishlist
	err := query.
		Preload("Barang").
		Preload("Barang.Pemilik").
		Preload("Barang.Kategori").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&wishlist).Error
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessWithMeta(c, fiber.StatusOK, "Wishlist retrieved successfully",
		wishlist, utils.Paginate(total, page, limit))
}

func (ctl *WishlistController) Check(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	barangID, err := c.ParamsInt("barang_id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid item id", nil)
	}

	var count int64
	if err := ctl.db.Model(&models.Wishlist{}).
		Where("user_id = ? AND barang_id = ?", user.UserID, barangID).
		Count(&count).Error; err != nil {
		return utils.HandleError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Wishlist checked successfully", fiber.Map{
		"in_wishlist": count > 0,
	})
}

func (ctl *WishlistController) Remove(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	barangID, err := c.ParamsInt("barang_id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid item id", nil)
	}

	result := ctl.db.
		Where("user_id = ? AND barang_id = ?", user.UserID, barangID).
		Delete(&models.Wishlist{})
	if result.Error != nil {
		return utils.HandleError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.Error(c, fiber.StatusNotFound, "Item not in wishlist", nil)
	}
	return utils.Success(c, fiber.StatusOK, "Item removed from wishlist successfully", nil)
}
