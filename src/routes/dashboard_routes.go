package routes

import (
	"Backend-ECW-B2S/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func DashboardRoutes(router fiber.Router) {
	dashboard := router.Group("/dashboard")

	dashboard.Get("/summary", controllers.GetDashboardSummary)
	dashboard.Get("/detailed", controllers.GetDetailedDashboard)
}
