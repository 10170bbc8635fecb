package requests

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/packages/datetypes"
)

type OrderRequest struct {
	Date        datetypes.Date     `form:"date" json:"date" validate:"required"`
	CustomerID  uint               `form:"customer_id" json:"customer_id" validate:"required,gt=0"`
	MotoboyID   *uint              `form:"motoboy_id" json:"motoboy_id"`
	AddressID   *uint              `form:"address_id" json:"address_id"`
	Source      models.OrderSource `form:"source" json:"source" validate:"gte=0"`
	Additional  decimal.Decimal    `form:"additional" json:"additional"`
	DeliveryFee decimal.Decimal    `form:"delivery_fee" json:"delivery_fee"`
	Discount    decimal.Decimal    `form:"discount" json:"discount"`
	Status      models.OrderStatus `form:"status" json:"status" validate:"gte=0"`
}

func ParseAndValidateOrderRequest(c *fiber.Ctx) (OrderRequest, map[string]string, error) {
	return parseAndValidate[OrderRequest](c)
}
