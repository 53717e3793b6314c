package routes

import (
	"github.com/gofiber/fiber/v2"
)

// InitRoutes mounts every module under /api/v1.
func InitRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	SubmissionRoutes(api)
	DraftRoutes(api)
	DashboardRoutes(api)
	GridRoutes(api)
	ExportRoutes(api)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
