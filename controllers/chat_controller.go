package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusmarket/middleware"
	"campusmarket/models"
	"campusmarket/services"
	"campusmarket/utils"
)

type ChatController struct {
	db       *gorm.DB
	notifier services.Notifier
}

func NewChatController(db *gorm.DB, notifier services.Notifier) *ChatController {
	return &ChatController{db: db, notifier: notifier}
}

type sendChatRequest struct {
	BarangID   uint   `json:"barang_id"`
	PenerimaID uint   `json:"penerima_id"`
	Pesan      string `json:"pesan"`
}

func (ctl *ChatController) Send(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req sendChatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if req.Pesan == "" {
		return utils.Error(c, fiber.StatusBadRequest, "Message is required", nil)
	}
	if req.PenerimaID == user.UserID {
		return utils.Error(c, fiber.StatusBadRequest, "You cannot message yourself", nil)
	}

	var barang models.Barang
	if err := ctl.db.Where("barang_id = ? AND lifecycle = ?", req.BarangID, models.BarangAktif).First(&barang).Error; err != nil {
		return utils.Error(c, fiber.StatusNotFound, "Item not found", nil)
	}
	var penerima models.User
	if err := ctl.db.First(&penerima, "user_id = ?", req.PenerimaID).Error; err != nil {
		return utils.Error(c, fiber.StatusNotFound, "Recipient not found", nil)
	}

	chat := models.Chat{
		BarangID:   req.BarangID,
		PengirimID: user.UserID,
		PenerimaID: req.PenerimaID,
		Pesan:      req.Pesan,
	}
	if err := ctl.db.Create(&chat).Error; err != nil {
		return utils.HandleError(c, err)
	}

	ctl.notifier.Notify(c.Context(), req.PenerimaID, "Pesan Baru",
		"Anda menerima pesan baru tentang "+barang.Judul)

	return utils.Success(c, fiber.StatusCreated, "Message sent successfully", chat)
}

// GetConversation menampilkan percakapan dua user tentang satu barang
func (ctl *ChatController) GetConversation(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	barangID, err := c.ParamsInt("barang_id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid item id", nil)
	}
	lawanID, err := c.ParamsInt("user_id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid user id", nil)
	}

	var messages []models.Chat
	findErr := ctl.db.
		Where("barang_id = ?", barangID).
		Where("(pengirim_id = ? AND penerima_id = ?) OR (pengirim_id = ? AND penerima_id = ?)",
			user.UserID, lawanID, lawanID, user.UserID).
		Order("created_at ASC").
		Find(&messages).Error
	if findErr != nil {
		return utils.HandleError(c, findErr)
	}
	return utils.Success(c, fiber.StatusOK, "Conversation retrieved successfully", messages)
}

// GetConversations menampilkan pesan terakhir per (barang, lawan bicara)
func (ctl *ChatController) GetConversations(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var messages []models.Chat
	err := ctl.db.
		Preload("Barang").
		Preload("Pengirim").
		Preload("Penerima").
		Where("pengirim_id = ? OR penerima_id = ?", user.UserID, user.UserID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return utils.HandleError(c, err)
	}

	type conversationKey struct {
		BarangID uint
		LawanID  uint
	}
	seen := make(map[conversationKey]bool)
	var latest []models.Chat
	for _, msg := range messages {
		lawanID := msg.PengirimID
		if lawanID == user.UserID {
			lawanID = msg.PenerimaID
		}
		key := conversationKey{BarangID: msg.BarangID, LawanID: lawanID}
		if !seen[key] {
			seen[key] = true
			latest = append(latest, msg)
		}
	}

	return utils.Success(c, fiber.StatusOK, "Conversations retrieved successfully", latest)
}

func (ctl *ChatController) MarkAsRead(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	barangID, err := c.ParamsInt("barang_id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid item id", nil)
	}
	lawanID, err := c.ParamsInt("user_id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid user id", nil)
	}

	updateErr := ctl.db.Model(&models.Chat{}).
		Where("barang_id = ? AND pengirim_id = ? AND penerima_id = ? AND dibaca = ?",
			barangID, lawanID, user.UserID, false).
		Update("dibaca", true).Error
	if updateErr != nil {
		return utils.HandleError(c, updateErr)
	}
	return utils.Success(c, fiber.StatusOK, "Messages marked as read", nil)
}
