package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"cursos/config"
	controllers "cursos/controllers/course"
	"cursos/database"
	courseRoutes "cursos/routers/courseRoutes"
	courseService "cursos/services/course"
	"cursos/services/importer"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to set up database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the frontend from the public folder
	app.Static("/", "./public")

	courses := courseService.NewService(db)
	imp := importer.New(courses)
	ctrl := controllers.New(courses, imp, cfg.UploadDir)

	courseRoutes.SetupCourseRoutes(app, ctrl)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
