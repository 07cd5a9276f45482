package routes

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/controllers"
)

func RegisterFileRoutes(app *fiber.App, ctl *controllers.FileController) {
	app.Get("/api/files/:id", ctl.Download)
}
