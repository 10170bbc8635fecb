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

func registerItemRoutes(app *fiber.App, db *gorm.DB, strict bool) {
	service := services.NewItemService(repositories.NewItemRepository(db))
	handler := handlers.NewResourceHandler[models.Item, requests.ItemRequest]("Item", service, requests.ParseAndValidateItemRequest, strict)

	app.Get("/item", handler.GetAll)
	app.Get("/item/:id", handler.GetOne)
	app.Post("/item", handler.Create)
	app.Put("/item/:id", handler.Update)
	app.Delete("/item/:id", handler.Delete)
}
