package routes

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/controllers"
)

func RegisterAuthRoutes(app *fiber.App, ctl *controllers.AuthController, auth fiber.Handler) {
	api := app.Group("/api/auth")
	api.Post("/register", ctl.Register)
	api.Post("/login", ctl.Login)
	api.Get("/profile", auth, ctl.GetProfile)
	api.Put("/profile", auth, ctl.UpdateProfile)
}
