package routes

import (
	"github.com/gofiber/fiber/v2"

	"campusmarket/controllers"
)

func RegisterChatRoutes(app *fiber.App, ctl *controllers.ChatController, auth fiber.Handler) {
	api := app.Group("/api/chat", auth)
	api.Post("/", ctl.Send)
	api.Get("/conversations", ctl.GetConversations)
	api.Get("/:barang_id/:user_id", ctl.GetConversation)
	api.Put("/:barang_id/:user_id/read", ctl.MarkAsRead)
}
