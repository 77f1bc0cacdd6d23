package routes

import (
	"github.com/gofiber/fiber/v2"

	"next-target-mock/config"
	"next-target-mock/internal/controllers"
	"next-target-mock/internal/services"
)

func SetupRoutesManpower(app *fiber.App, svc *services.ManpowerService, seed config.SeedConfig) {
	app.Get("/", controllers.Capabilities())

	api := app.Group("/api")

	// curl "http://localhost:3001/api/manpower/front?pid=334455667"
	api.Get("/manpower/front", controllers.GetFront(svc))

	api.Get("/manpowers", controllers.ListPeople(svc))
	api.Post("/manpowers", controllers.CreatePerson(svc))
	api.Delete("/manpowers", controllers.DeleteAll(svc))
	api.Get("/manpowers/:pid", controllers.GetByPersonalID(svc))

	api.Post("/seed", controllers.SeedFixed(svc))
	// curl -X POST "http://localhost:3001/api/seed-heavy?count=5000&batchSize=1000"
	api.Post("/seed-heavy", controllers.SeedHeavy(svc, seed))
}
