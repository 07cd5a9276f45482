package routes

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/controllers"
	"campusmarket/middleware"
)

func RegisterKategoriRoutes(app *fiber.App, ctl *controllers.KategoriController, auth fiber.Handler) {
	api := app.Group("/api/kategori")
	api.Get("/", ctl.GetAll)
	api.Get("/:id", ctl.GetByID)
	api.Post("/", auth, middleware.AdminOnly, ctl.Create)
	api.Put("/:id", auth, middleware.AdminOnly, ctl.Update)
	api.Delete("/:id", auth, middleware.AdminOnly, ctl.Delete)
}
