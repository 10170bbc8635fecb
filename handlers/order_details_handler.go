package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitoraqdev/SalesOrderManagement/requests"
	"github.com/vitoraqdev/SalesOrderManagement/services"
)

// OrderDetailsHandler differs from the generic resource: the path id is an
// order id addressing the whole line family, and GET returns a list.
type OrderDetailsHandler struct {
	service services.IOrderDetailsService
	strict  bool
}

func NewOrderDetailsHandler(service services.IOrderDetailsService, strict bool) *OrderDetailsHandler {
	return &OrderDetailsHandler{service: service, strict: strict}
}

const orderDetailsResource = "Order details"

func (h *OrderDetailsHandler) GetByOrder(c *fiber.Ctx) error {
	orderID, err := parseID(c)
	if err != nil {
		return err
	}

	details, err := h.service.GetByOrderID(c.Context(), orderID)
	if err != nil {
		return respondError(c, orderDetailsResource, "get", err, h.strict)
	}
	return c.JSON(details)
}

func (h *OrderDetailsHandler) GetAll(c *fiber.Ctx) error {
	details, err := h.service.GetAll(c.Context())
	if err != nil {
		return respondError(c, orderDetailsResource, "list", err, h.strict)
	}
	return c.JSON(details)
}

func (h *OrderDetailsHandler) Create(c *fiber.Ctx) error {
	req, fieldErrors, err := requests.ParseAndValidateOrderDetailsRequest(c)
	if err != nil {
		return badRequest(c, orderDetailsResource, err, fieldErrors)
	}

	details, err := h.service.Create(c.Context(), req)
	if err != nil {
		return respondError(c, orderDetailsResource, "create", err, h.strict)
	}
	return c.JSON(details)
}

func (h *OrderDetailsHandler) Update(c *fiber.Ctx) error {
	orderID, err := parseID(c)
	if err != nil {
		return err
	}

	req, fieldErrors, err := requests.ParseAndValidateOrderDetailsRequest(c)
	if err != nil {
		return badRequest(c, orderDetailsResource, err, fieldErrors)
	}

	details, err := h.service.Update(c.Context(), orderID, req)
	if err != nil {
		return respondError(c, orderDetailsResource, "update", err, h.strict)
	}
	return c.JSON(details)
}

func (h *OrderDetailsHandler) Delete(c *fiber.Ctx) error {
	orderID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), orderID); err != nil {
		return respondError(c, orderDetailsResource, "delete", err, h.strict)
	}
	return c.SendString(orderDetailsResource + " deleted")
}
