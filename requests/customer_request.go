package requests

import "github.com/gofiber/fiber/v2"

type CustomerRequest struct {
	Name      string  `form:"name" json:"name" validate:"required"`
	Phone     *string `form:"phone" json:"phone"`
	AddressID uint    `form:"address_id" json:"address_id" validate:"required,gt=0"`
}

func ParseAndValidateCustomerRequest(c *fiber.Ctx) (CustomerRequest, map[string]string, error) {
	return parseAndValidate[CustomerRequest](c)
}

type CustomerAddressRequest struct {
	CustomerID uint `form:"customer_id" json:"customer_id" validate:"required,gt=0"`
	AddressID  uint `form:"address_id" json:"address_id" validate:"required,gt=0"`
}

func ParseAndValidateCustomerAddressRequest(c *fiber.Ctx) (CustomerAddressRequest, map[string]string, error) {
	return parseAndValidate[CustomerAddressRequest](c)
}
