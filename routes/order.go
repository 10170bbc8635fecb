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

func registerOrderRoutes(app *fiber.App, db *gorm.DB, strict bool) {
	service := services.NewOrderService(repositories.NewOrderRepository(db))
	handler := handlers.NewResourceHandler[models.CustomerOrder, requests.OrderRequest]("Order", service, requests.ParseAndValidateOrderRequest, strict)

	app.Get("/order", handler.GetAll)
	app.Get("/order/:id", handler.GetOne)
	app.Post("/order", handler.Create)
	app.Put("/order/:id", handler.Update)
	app.Delete("/order/:id", handler.Delete)
}

func registerOrderDetailsRoutes(app *fiber.App, db *gorm.DB, strict bool) {
	service := services.NewOrderDetailsService(
		repositories.NewOrderDetailsRepository(db),
		repositories.NewItemRepository(db),
	)
	handler := handlers.NewOrderDetailsHandler(service, strict)

	app.Get("/order_details", handler.GetAll)
	app.Get("/order_details/:id", handler.GetByOrder)
	app.Post("/order_details", handler.Create)
	app.Put("/order_details/:id", handler.Update)
	app.Delete("/order_details/:id", handler.Delete)
}
