package controllers

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/middleware"
	"campusmarket/services"
	"campusmarket/utils"
)

type RatingController struct {
	svc *services.RatingService
}

func NewRatingController(svc *services.RatingService) *RatingController {
	return &RatingController{svc: svc}
}

type createRatingRequest struct {
	TransaksiID uint   `json:"transaksi_id"`
	Nilai       int    `json:"nilai"`
	Komentar    string `json:"komentar"`
}

func (ctl *RatingController) Create(c *fiber.Ctx) error {
	var req createRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if req.TransaksiID == 0 {
		return utils.Error(c, fiber.StatusBadRequest, "transaksi_id is required", nil)
	}

	rating, err := ctl.svc.Create(c.Context(), middleware.ActorFromCtx(c), services.CreateRatingInput{
		TransaksiID: req.TransaksiID,
		Nilai:       req.Nilai,
		Komentar:    req.Komentar,
	})
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, "Rating submitted successfully", rating)
}

func (ctl *RatingController) GetByTransaksi(c *fiber.Ctx) error {
	id, err := c.ParamsInt("transaksi_id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid transaction id", nil)
	}

	rating, svcErr := ctl.svc.GetByTransaksi(c.Context(), uint(id))
	if svcErr != nil {
		return utils.HandleError(c, svcErr)
	}
	return utils.Success(c, fiber.StatusOK, "Rating retrieved successfully", rating)
}

func (ctl *RatingController) GetForUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid user id", nil)
	}
	page, limit, offset := utils.PageParams(c)

	ratings, total, svcErr := ctl.svc.ListForUser(c.Context(), uint(userID), limit, offset)
	if svcErr != nil {
		return utils.HandleError(c, svcErr)
	}
	return utils.SuccessWithMeta(c, fiber.StatusOK, "Ratings retrieved successfully",
		ratings, utils.Paginate(total, page, limit))
}

func (ctl *RatingController) GetUserStats(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid user id", nil)
	}

	stats, svcErr := ctl.svc.StatsForUser(c.Context(), uint(userID))
	if svcErr != nil {
		return utils.HandleError(c, svcErr)
	}
	return utils.Success(c, fiber.StatusOK, "Rating statistics retrieved successfully", stats)
}

type updateRatingRequest struct {
	Nilai    int    `json:"nilai"`
	Komentar string `json:"komentar"`
}

func (ctl *RatingController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid rating id", nil)
	}

	var req updateRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	rating, svcErr := ctl.svc.Update(c.Context(), middleware.ActorFromCtx(c), uint(id), req.Nilai, req.Komentar)
	if svcErr != nil {
		return utils.HandleError(c, svcErr)
	}
	return utils.Success(c, fiber.StatusOK, "Rating updated successfully", rating)
}

func (ctl *RatingController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid rating id", nil)
	}

	if err := ctl.svc.Delete(c.Context(), middleware.ActorFromCtx(c), uint(id)); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Rating deleted successfully", nil)
}
