package controllers

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/middleware"
	"campusmarket/models"
	"campusmarket/repositories"
	"campusmarket/services"
	"campusmarket/utils"
)

type TransaksiController struct {
	svc *services.TransaksiService
}

func NewTransaksiController(svc *services.TransaksiService) *TransaksiController {
	return &TransaksiController{svc: svc}
}

type createTransaksiRequest struct {
	BarangID         uint   `json:"barang_id"`
	MetodePembayaran string `json:"metode_pembayaran"`
	Catatan          string `json:"catatan"`
}

func (ctl *TransaksiController) Create(c *fiber.Ctx) error {
	var req createTransaksiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if req.BarangID == 0 {
		return utils.Error(c, fiber.StatusBadRequest, "barang_id is required", nil)
	}

	transaksi, err := ctl.svc.Create(c.Context(), middleware.ActorFromCtx(c), services.CreateTransaksiInput{
		BarangID:         req.BarangID,
		MetodePembayaran: req.MetodePembayaran,
		Catatan:          req.Catatan,
	})
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, "Transaction created successfully", transaksi)
}

func (ctl *TransaksiController) GetAll(c *fiber.Ctx) error {
	page, limit, offset := utils.PageParams(c)

	filter := repositories.TransaksiFilter{
		Role:   c.Query("role"),
		Limit:  limit,
		Offset: offset,
	}
	if rawStatus := c.Query("status"); rawStatus != "" {
		status, ok := models.ParseStatusTransaksi(rawStatus)
		if !ok {
			return utils.Error(c, fiber.StatusBadRequest, "Invalid status", nil)
		}
		filter.Status = status
	}

	transaksi, total, err := ctl.svc.ListForUser(c.Context(), middleware.ActorFromCtx(c), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessWithMeta(c, fiber.StatusOK, "Transactions retrieved successfully",
		transaksi, utils.Paginate(total, page, limit))
}

func (ctl *TransaksiController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid transaction id", nil)
	}

	transaksi, svcErr := ctl.svc.GetByID(c.Context(), middleware.ActorFromCtx(c), uint(id))
	if svcErr != nil {
		return utils.HandleError(c, svcErr)
	}
	return utils.Success(c, fiber.StatusOK, "Transaction retrieved successfully", transaksi)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (ctl *TransaksiController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid transaction id", nil)
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	// enum tertutup: nilai asing ditolak sebelum masuk state machine
	status, ok := models.ParseStatusTransaksi(req.Status)
	if !ok {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid status", nil)
	}

	transaksi, svcErr := ctl.svc.UpdateStatus(c.Context(), middleware.ActorFromCtx(c), uint(id), status)
	if svcErr != nil {
		return utils.HandleError(c, svcErr)
	}
	return utils.Success(c, fiber.StatusOK, "Transaction status updated successfully", transaksi)
}
