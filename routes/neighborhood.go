package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/handlers"
	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/repositories"
	"github.com/vitoraqdev/SalesOrderManagement/requests"
	"github.com/vitoraqdev/SalesOrderManagement/services"
)

// Neighborhoods live under the address prefix; see SetupRoutes for the
// registration-order dependency.
func registerNeighborhoodRoutes(app *fiber.App, db *gorm.DB, strict bool) {
	service := services.NewNeighborhoodService(repositories.NewNeighborhoodRepository(db))
	handler := handlers.NewResourceHandler[models.Neighborhood, requests.NeighborhoodRequest]("Neighborhood", service, requests.ParseAndValidateNeighborhoodRequest, strict)

	app.Get("/address/neighborhood", handler.GetAll)
	app.Get("/address/neighborhood/:id", handler.GetOne)
	app.Post("/address/neighborhood", handler.Create)
	app.Put("/address/neighborhood/:id", handler.Update)
	app.Delete("/address/neighborhood/:id", handler.Delete)
}
