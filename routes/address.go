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

func registerAddressRoutes(app *fiber.App, db *gorm.DB, strict bool) {
	service := services.NewAddressService(
		repositories.NewAddressRepository(db),
		repositories.NewNeighborhoodRepository(db),
	)
	handler := handlers.NewResourceHandler[models.Address, requests.AddressRequest]("Address", service, requests.ParseAndValidateAddressRequest, strict)

	app.Get("/address", handler.GetAll)
	app.Get("/address/:id", handler.GetOne)
	app.Post("/address", handler.Create)
	app.Put("/address/:id", handler.Update)
	app.Delete("/address/:id", handler.Delete)
}
