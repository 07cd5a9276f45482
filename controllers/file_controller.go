package controllers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"campusmarket/storage"
	"campusmarket/utils"
)

type FileController struct {
	storage storage.ObjectStorage
}

func NewFileController(objectStorage storage.ObjectStorage) *FileController {
	return &FileController{storage: objectStorage}
}

// Download menyajikan foto barang langsung dari object storage
func (ctl *FileController) Download(c *fiber.Ctx) error {
	objectID := c.Params("id")
	if objectID == "" {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid file id", nil)
	}

	data, err := ctl.storage.Download(c.Context(), objectID)
	if err != nil {
		return utils.Error(c, fiber.StatusNotFound, "File not found", nil)
	}

	c.Set(fiber.HeaderContentType, http.DetectContentType(data))
	return c.Send(data)
}
