package requests

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ItemRequest's Price is a pointer so required rejects an omitted field
// while an explicit 0.00 stays valid. The other money fields follow suit.
type ItemRequest struct {
	Name        string          `form:"name" json:"name" validate:"required"`
	Price       *decimal.Decimal `form:"price" json:"price" validate:"required"`
	Description string          `form:"description" json:"description" validate:"required"`
	IsActive    bool            `form:"is_active" json:"is_active"`
}

func ParseAndValidateItemRequest(c *fiber.Ctx) (ItemRequest, map[string]string, error) {
	return parseAndValidate[ItemRequest](c)
}
