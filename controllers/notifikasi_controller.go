package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusmarket/middleware"
	"campusmarket/models"
	"campusmarket/utils"
)

type NotifikasiController struct {
	db *gorm.DB
}

func NewNotifikasiController(db *gorm.DB) *NotifikasiController {
	return &NotifikasiController{db: db}
}

func (ctl *NotifikasiController) GetAll(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	page, limit, offset := utils.PageParams(c)

	query := ctl.db.Model(&models.Notifikasi{}).Where("user_id = ?", user.UserID)
	if isRead := c.Query("is_read"); isRead != "" {
		query = query.Where("dibaca = ?", isRead == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.HandleError(c, err)
	}

	var notifikasi []models.Notifikasi
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifikasi).Error
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessWithMeta(c, fiber.StatusOK, "Notifications retrieved successfully",
		notifikasi, utils.Paginate(total, page, limit))
}

func (ctl *NotifikasiController) GetUnreadCount(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var count int64
	err := ctl.db.Model(&models.Notifikasi{}).
		Where("user_id = ? AND dibaca = ?", user.UserID, false).
		Count(&count).Error
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Unread count retrieved successfully", fiber.Map{
		"unread_count": count,
	})
}

func (ctl *NotifikasiController) GetByID(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid notification id", nil)
	}

	var notifikasi models.Notifikasi
	findErr := ctl.db.
		Where("notifikasi_id = ? AND user_id = ?", id, user.UserID).
		First(&notifikasi).Error
	if findErr != nil {
		return utils.Error(c, fiber.StatusNotFound, "Notification not found", nil)
	}
	return utils.Success(c, fiber.StatusOK, "Notification retrieved successfully", notifikasi)
}

func (ctl *NotifikasiController) MarkAsRead(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid notification id", nil)
	}

	var notifikasi models.Notifikasi
	findErr := ctl.db.
		Where("notifikasi_id = ? AND user_id = ?", id, user.UserID).
		First(&notifikasi).Error
	if findErr != nil {
		return utils.Error(c, fiber.StatusNotFound, "Notification not found", nil)
	}

	notifikasi.Dibaca = true
	if err := ctl.db.Save(&notifikasi).Error; err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Notification marked as read", notifikasi)
}

func (ctl *NotifikasiController) MarkAllAsRead(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	err := ctl.db.Model(&models.Notifikasi{}).
		Where("user_id = ? AND dibaca = ?", user.UserID, false).
		Update("dibaca", true).Error
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "All notifications marked as read", nil)
}

func (ctl *NotifikasiController) Delete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid notification id", nil)
	}

	result := ctl.db.
		Where("notifikasi_id = ? AND user_id = ?", id, user.UserID).
		Delete(&models.Notifikasi{})
	if result.Error != nil {
		return utils.HandleError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.Error(c, fiber.StatusNotFound, "Notification not found", nil)
	}
	return utils.Success(c, fiber.StatusOK, "Notification deleted successfully", nil)
}
