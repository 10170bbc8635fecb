package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitoraqdev/SalesOrderManagement/requests"
	"github.com/vitoraqdev/SalesOrderManagement/services"
)

// CustomerAddressHandler exposes the link table: list a customer's addresses,
// attach a new one.
type CustomerAddressHandler struct {
	service services.ICustomerAddressService
	strict  bool
}

func NewCustomerAddressHandler(service services.ICustomerAddressService, strict bool) *CustomerAddressHandler {
	return &CustomerAddressHandler{service: service, strict: strict}
}

const customerAddressResource = "Customer address"

func (h *CustomerAddressHandler) GetByCustomer(c *fiber.Ctx) error {
	customerID, err := parseID(c)
	if err != nil {
		return err
	}

	addresses, err := h.service.GetAddressesByCustomerID(c.Context(), customerID)
	if err != nil {
		return respondError(c, customerAddressResource, "get", err, h.strict)
	}
	return c.JSON(addresses)
}

func (h *CustomerAddressHandler) Create(c *fiber.Ctx) error {
	req, fieldErrors, err := requests.ParseAndValidateCustomerAddressRequest(c)
	if err != nil {
		return badRequest(c, customerAddressResource, err, fieldErrors)
	}

	link, err := h.service.Create(c.Context(), req)
	if err != nil {
		return respondError(c, customerAddressResource, "create", err, h.strict)
	}
	return c.JSON(link)
}
