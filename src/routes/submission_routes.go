package routes

import (
	"Backend-ECW-B2S/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func SubmissionRoutes(router fiber.Router) {
	submissions := router.Group("/submissions")

	submissions.Post("/", controllers.CreateSubmission)
	submissions.Get("/", controllers.GetSubmissions)
	submissions.Get("/latest", controllers.GetLatestSubmissions)
	submissions.Get("/:id", controllers.GetSubmission)
	submissions.Delete("/:id", controllers.DeleteSubmission)
}
