// Package utils menyeragamkan amplop JSON seluruh API dan pemetaan
// error domain ke kode HTTP.
package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"campusmarket/apperrors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

type Meta struct {
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	ItemsPerPage int   `json:"items_per_page"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
}

func Success(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(c *fiber.Ctx, statusCode int, message string, data interface{}, meta *Meta) error {
	return c.Status(statusCode).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func Error(c *fiber.Ctx, statusCode int, message string, errs interface{}) error {
	return c.Status(statusCode).JSON(Response{
		Status:  "error",
		Message: message,
		Errors:  errs,
	})
}

func Paginate(total int64, page, limit int) *Meta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &Meta{
		Pagination: Pagination{
			TotalItems:   total,
			TotalPages:   totalPages,
			CurrentPage:  page,
			ItemsPerPage: limit,
			HasNextPage:  page < totalPages,
			HasPrevPage:  page > 1,
		},
	}
}

// HandleError memetakan kind error domain ke kode HTTP. Error di luar
// taksonomi tidak pernah bocor ke response.
func HandleError(c *fiber.Ctx, err error) error {
	if kind, ok := apperrors.KindOf(err); ok {
		code := fiber.StatusBadRequest
		switch kind {
		case apperrors.KindNotFound:
			code = fiber.StatusNotFound
		case apperrors.KindAuthorization:
			code = fiber.StatusForbidden
		case apperrors.KindConflict:
			code = fiber.StatusConflict
		case apperrors.KindValidation, apperrors.KindInvalidOperation:
			code = fiber.StatusBadRequest
		}
		return Error(c, code, err.Error(), nil)
	}

	log.Printf("❌ Internal error: %v", err)
	return Error(c, fiber.StatusInternalServerError, "Internal server error", nil)
}

// PageParams membaca parameter pagination dengan default yang aman
func PageParams(c *fiber.Ctx) (page, limit, offset int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset = (page - 1) * limit
	return page, limit, offset
}
