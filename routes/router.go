package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/middlewares"
)

// SetupRoutes wires every resource family. Neighborhood routes register
// before the address ones so /address/neighborhood is not captured by the
// /address/:id parameter.
func SetupRoutes(app *fiber.App, db *gorm.DB, strict bool) {
	app.Use(middlewares.ZapLogger())

	registerNeighborhoodRoutes(app, db, strict)
	registerAddressRoutes(app, db, strict)
	registerCustomerRoutes(app, db, strict)
	registerCustomerAddressRoutes(app, db, strict)
	registerItemRoutes(app, db, strict)
	registerMotoboyRoutes(app, db, strict)
	registerOrderRoutes(app, db, strict)
	registerOrderDetailsRoutes(app, db, strict)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("Not found")
	})
}
