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

func registerMotoboyRoutes(app *fiber.App, db *gorm.DB, strict bool) {
	service := services.NewMotoboyService(repositories.NewMotoboyRepository(db))
	handler := handlers.NewResourceHandler[models.Motoboy, requests.MotoboyRequest]("Motoboy", service, requests.ParseAndValidateMotoboyRequest, strict)

	app.Get("/motoboy", handler.GetAll)
	app.Get("/motoboy/:id", handler.GetOne)
	app.Post("/motoboy", handler.Create)
	app.Put("/motoboy/:id", handler.Update)
	app.Delete("/motoboy/:id", handler.Delete)
}
