package routes

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/controllers"
	"campusmarket/middleware"
)

func RegisterBarangRoutes(app *fiber.App, ctl *controllers.BarangController, auth fiber.Handler) {
	api := app.Group("/api/barang")
	api.Get("/", ctl.GetAll)
	api.Get("/mine", auth, ctl.GetMine)
	api.Get("/:id", ctl.GetByID)
	api.Post("/", auth, ctl.Create)
	api.Put("/:id", auth, ctl.Update)
	api.Delete("/:id", auth, ctl.Archive)
	api.Delete("/:id/permanent", auth, middleware.AdminOnly, ctl.Purge)
}
