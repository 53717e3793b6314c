package routes

import (
	"Backend-ECW-B2S/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func GridRoutes(router fiber.Router) {
	grid := router.Group("/grid")

	grid.Get("/rows", controllers.GetGridRows)
	grid.Put("/:id/activities/:index", controllers.UpdateGridActivity)
	grid.Delete("/:id/activities/:index", controllers.DeleteGridActivity)
}
