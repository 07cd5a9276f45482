package routes

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/controllers"
)

func RegisterNotifikasiRoutes(app *fiber.App, ctl *controllers.NotifikasiController, auth fiber.Handler) {
	api := app.Group("/api/notifikasi", auth)
	api.Get("/", ctl.GetAll)
	api.Get("/unread-count", ctl.GetUnreadCount)
	api.Get("/:id", ctl.GetByID)
	api.Put("/read-all", ctl.MarkAllAsRead)
	api.Put("/:id/read", ctl.MarkAsRead)
	api.Delete("/:id", ctl.Delete)
}
