package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"Backend-ECW-B2S/src/database"
	"Backend-ECW-B2S/src/routes"
	"Backend-ECW-B2S/src/services/grid"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	database.InitRedis()

	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ must stay false with "*"
	}))

	routes.InitRoutes(app)

	// Materialize the grid rows and keep them in sync with the change
	// stream. The HTTP API still works from the initial load if the
	// stream cannot start (e.g. standalone Mongo without an oplog).
	if err := grid.Start(context.Background()); err != nil {
		log.Printf("⚠️ live grid updates unavailable: %v", err)
	}

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
