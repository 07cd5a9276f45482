package routes

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/controllers"
)

func RegisterWishlistRoutes(app *fiber.App, ctl *controllers.WishlistController, auth fiber.Handler) {
	api := app.Group("/api/wishlist", auth)
	api.Post("/", ctl.Add)
	api.Get("/", ctl.GetAll)
	api.Get("/check/:barang_id", ctl.Check)
	api.Delete("/:barang_id", ctl.Remove)
}
