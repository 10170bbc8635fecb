package requests

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// AddressRequest leaves DeliveryFee as a pointer: when the caller omits it,
// the service substitutes the neighborhood default.
type AddressRequest struct {
	Street         string           `form:"street" json:"street" validate:"required"`
	Number         string           `form:"number" json:"number" validate:"required"`
	NeighborhoodID uint             `form:"neighborhood_id" json:"neighborhood_id" validate:"required,gt=0"`
	Complement     *string          `form:"complement" json:"complement"`
	Observation    *string          `form:"observation" json:"observation"`
	DeliveryFee    *decimal.Decimal `form:"delivery_fee" json:"delivery_fee"`
}

func ParseAndValidateAddressRequest(c *fiber.Ctx) (AddressRequest, map[string]string, error) {
	return parseAndValidate[AddressRequest](c)
}
