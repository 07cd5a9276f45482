package routes

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/controllers"
)

func RegisterRatingRoutes(app *fiber.App, ctl *controllers.RatingController, auth fiber.Handler) {
	api := app.Group("/api/rating", auth)
	api.Post("/", ctl.Create)
	api.Get("/transaksi/:transaksi_id", ctl.GetByTransaksi)
	api.Get("/user/:user_id", ctl.GetForUser)
	api.Get("/user/:user_id/stats", ctl.GetUserStats)
	api.Put("/:id", ctl.Update)
	api.Delete("/:id", ctl.Delete)
}
