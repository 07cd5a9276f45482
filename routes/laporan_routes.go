package routes

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/controllers"
	"campusmarket/middleware"
)

func RegisterLaporanRoutes(app *fiber.App, ctl *controllers.LaporanController, auth fiber.Handler) {
	api := app.Group("/api/laporan", auth)
	api.Post("/", ctl.Create)
	api.Get("/", middleware.AdminOnly, ctl.GetAll)
	api.Get("/:id", middleware.AdminOnly, ctl.GetByID)
	api.Put("/:id/status", middleware.AdminOnly, ctl.UpdateStatus)
}
