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

func registerCustomerRoutes(app *fiber.App, db *gorm.DB, strict bool) {
	service := services.NewCustomerService(repositories.NewCustomerRepository(db))
	handler := handlers.NewResourceHandler[models.Customer, requests.CustomerRequest]("Customer", service, requests.ParseAndValidateCustomerRequest, strict)

	app.Get("/customer", handler.GetAll)
	app.Get("/customer/:id", handler.GetOne)
	app.Post("/customer", handler.Create)
	app.Put("/customer/:id", handler.Update)
	app.Delete("/customer/:id", handler.Delete)
}

func registerCustomerAddressRoutes(app *fiber.App, db *gorm.DB, strict bool) {
	service := services.NewCustomerAddressService(repositories.NewCustomerAddressRepository(db))
	handler := handlers.NewCustomerAddressHandler(service, strict)

	app.Get("/customer_address/:id", handler.GetByCustomer)
	app.Post("/customer_address", handler.Create)
}
