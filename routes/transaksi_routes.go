package routes

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/controllers"
)

func RegisterTransaksiRoutes(app *fiber.App, ctl *controllers.TransaksiController, auth fiber.Handler) {
	api := app.Group("/api/transaksi", auth)
	api.Post("/", ctl.Create)
	api.Get("/", ctl.GetAll)
	api.Get("/:id", ctl.GetByID)
	api.Put("/:id/status", ctl.UpdateStatus)
}
