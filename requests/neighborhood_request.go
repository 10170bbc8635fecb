package requests

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type NeighborhoodRequest struct {
	Name        string          `form:"name" json:"name" validate:"required"`
	DeliveryFee *decimal.Decimal `form:"delivery_fee" json:"delivery_fee" validate:"required"`
}

func ParseAndValidateNeighborhoodRequest(c *fiber.Ctx) (NeighborhoodRequest, map[string]string, error) {
	return parseAndValidate[NeighborhoodRequest](c)
}
