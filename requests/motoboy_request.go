package requests

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type MotoboyRequest struct {
	Name        string          `form:"name" json:"name" validate:"required"`
	Phone       string          `form:"phone" json:"phone" validate:"required"`
	DailySalary *decimal.Decimal `form:"daily_salary" json:"daily_salary" validate:"required"`
	IsActive    bool            `form:"is_active" json:"is_active"`
}

func ParseAndValidateMotoboyRequest(c *fiber.Ctx) (MotoboyRequest, map[string]string, error) {
	return parseAndValidate[MotoboyRequest](c)
}
