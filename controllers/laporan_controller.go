package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusmarket/middleware"
	"campusmarket/models"
	"campusmarket/services"
	"campusmarket/utils"
)

type LaporanController struct {
	db       *gorm.DB
	notifier services.Notifier
}

func NewLaporanController(db *gorm.DB, notifier services.Notifier) *LaporanController {
	return &LaporanController{db: db, notifier: notifier}
}

type createLaporanRequest struct {
	TerlaporID uint   `json:"terlapor_id"`
	Alasan     string `json:"alasan"`
}

func (ctl *LaporanController) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req createLaporanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if req.Alasan == "" {
		return utils.Error(c, fiber.StatusBadRequest, "Report reason is required", nil)
	}
	if req.TerlaporID == user.UserID {
		return utils.Error(c, fiber.StatusBadRequest, "You cannot report yourself", nil)
	}

	var terlapor models.User
	if err := ctl.db.First(&terlapor, "user_id = ?", req.TerlaporID).Error; err != nil {
		return utils.Error(c, fiber.StatusNotFound, "Reported user not found", nil)
	}

	laporan := models.Laporan{
		PelaporID:  user.UserID,
		TerlaporID: req.TerlaporID,
		Alasan:     req.Alasan,
		Status:     models.LaporanPending,
	}
	if err := ctl.db.Create(&laporan).Error; err != nil {
		return utils.HandleError(c, err)
	}

	// beritahu semua admin, best effort
	var admins []models.User
	if err := ctl.db.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err == nil {
		pesan := fmt.Sprintf("Laporan baru dari %s terhadap user #%d", user.Nama, req.TerlaporID)
		for _, admin := range admins {
			ctl.notifier.Notify(c.Context(), admin.UserID, "Laporan User Baru", pesan)
		}
	}

	return utils.Success(c, fiber.StatusCreated, "Report submitted successfully", laporan)
}

func (ctl *LaporanController) GetAll(c *fiber.Ctx) error {
	page, limit, offset := utils.PageParams(c)

	query := ctl.db.Model(&models.Laporan{})
	if rawStatus := c.Query("status"); rawStatus != "" {
		status, ok := models.ParseStatusLaporan(rawStatus)
		if !ok {
			return utils.Error(c, fiber.StatusBadRequest, "Invalid status", nil)
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.HandleError(c, err)
	}

	var laporan []models.Laporan
	err := query.
		Preload("Pelapor").
		Preload("Terlapor").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&laporan).Error
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessWithMeta(c, fiber.StatusOK, "Reports retrieved successfully",
		laporan, utils.Paginate(total, page, limit))
}

func (ctl *LaporanController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid report id", nil)
	}

	var laporan models.Laporan
	findErr := ctl.db.
		Preload("Pelapor").
		Preload("Terlapor").
		First(&laporan, "laporan_id = ?", id).Error
	if findErr != nil {
		return utils.Error(c, fiber.StatusNotFound, "Report not found", nil)
	}
	return utils.Success(c, fiber.StatusOK, "Report retrieved successfully", laporan)
}

type updateLaporanRequest struct {
	Status string `json:"status"`
}

func (ctl *LaporanController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid report id", nil)
	}

	var req updateLaporanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	status, ok := models.ParseStatusLaporan(req.Status)
	if !ok {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid status", nil)
	}

	var laporan models.Laporan
	if err := ctl.db.First(&laporan, "laporan_id = ?", id).Error; err != nil {
		return utils.Error(c, fiber.StatusNotFound, "Report not found", nil)
	}

	laporan.Status = status
	if err := ctl.db.Save(&laporan).Error; err != nil {
		return utils.HandleError(c, err)
	}

	ctl.notifier.Notify(c.Context(), laporan.PelaporID, "Update Laporan",
		fmt.Sprintf("Laporan #%d Anda kini berstatus %s", laporan.LaporanID, laporan.Status))

	return utils.Success(c, fiber.StatusOK, "Report status updated successfully", laporan)
}
