package routes

import (
	"Backend-ECW-B2S/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func DraftRoutes(router fiber.Router) {
	drafts := router.Group("/drafts")

	drafts.Post("/", controllers.SaveDraft)
	drafts.Get("/", controllers.ListDrafts)
	drafts.Get("/:id", controllers.GetDraft)
	drafts.Delete("/:id", controllers.DeleteDraft)
}
