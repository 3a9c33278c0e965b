package main

import (
	"log"

	"gig_manager/database"
	"gig_manager/helper"
	"gig_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartDigestScheduler()
	defer helper.StopDigestScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
