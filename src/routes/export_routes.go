package routes

import (
	"Backend-ECW-B2S/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func ExportRoutes(router fiber.Router) {
	exports := router.Group("/exports")

	exports.Get("/rows", controllers.ExportRows)
}
