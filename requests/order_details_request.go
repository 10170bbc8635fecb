package requests

import "github.com/gofiber/fiber/v2"

// OrderDetailsRequest deliberately has no unit price field: the catalog price
// is looked up server-side, so a client-submitted value has nowhere to land.
type OrderDetailsRequest struct {
	OrderID  uint `form:"order_id" json:"order_id" validate:"required,gt=0"`
	ItemID   uint `form:"item_id" json:"item_id" validate:"required,gt=0"`
	Quantity int  `form:"quantity" json:"quantity" validate:"required,gt=0"`
}

func ParseAndValidateOrderDetailsRequest(c *fiber.Ctx) (OrderDetailsRequest, map[string]string, error) {
	return parseAndValidate[OrderDetailsRequest](c)
}
