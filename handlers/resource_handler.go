// Package handlers maps the CRUD surface onto HTTP. The seven id-keyed
// resources share one generic handler; order details and the customer-address
// link table have their own shapes.
package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vitoraqdev/SalesOrderManagement/configs/logconfig"
	"github.com/vitoraqdev/SalesOrderManagement/packages/apperr"
)

// ResourceService is the uniform five-operation contract the generic handler
// drives. T is the entity row, R its write payload.
type ResourceService[T any, R any] interface {
	GetByID(ctx context.Context, id uint) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, req R) (*T, error)
	Update(ctx context.Context, id uint, req R) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// ResourceHandler implements the five CRUD endpoints for one entity. The
// per-entity differences (fee defaulting, price resolution) live behind the
// service, so the HTTP mapping stays identical across resources.
type ResourceHandler[T any, R any] struct {
	name    string
	service ResourceService[T, R]
	parse   func(*fiber.Ctx) (R, map[string]string, error)
	strict  bool
}

func NewResourceHandler[T any, R any](
	name string,
	service ResourceService[T, R],
	parse func(*fiber.Ctx) (R, map[string]string, error),
	strict bool,
) *ResourceHandler[T, R] {
	return &ResourceHandler[T, R]{name: name, service: service, parse: parse, strict: strict}
}

func (h *ResourceHandler[T, R]) GetOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	row, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return h.fail(c, "get", err)
	}
	return c.JSON(row)
}

func (h *ResourceHandler[T, R]) GetAll(c *fiber.Ctx) error {
	rows, err := h.service.GetAll(c.Context())
	if err != nil {
		return h.fail(c, "list", err)
	}
	return c.JSON(rows)
}

func (h *ResourceHandler[T, R]) Create(c *fiber.Ctx) error {
	req, fieldErrors, err := h.parse(c)
	if err != nil {
		return badRequest(c, h.name, err, fieldErrors)
	}

	row, err := h.service.Create(c.Context(), req)
	if err != nil {
		return h.fail(c, "create", err)
	}
	return c.JSON(row)
}

func (h *ResourceHandler[T, R]) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	req, fieldErrors, err := h.parse(c)
	if err != nil {
		return badRequest(c, h.name, err, fieldErrors)
	}

	row, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return h.fail(c, "update", err)
	}
	return c.JSON(row)
}

func (h *ResourceHandler[T, R]) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, "delete", err)
	}
	return c.SendString(h.name + " deleted")
}

func (h *ResourceHandler[T, R]) fail(c *fiber.Ctx, op string, err error) error {
	return respondError(c, h.name, op, err, h.strict)
}

// parseID reads the :id path segment. Non-numeric ids never reach storage;
// the fiber error handler renders the 400.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func badRequest(c *fiber.Ctx, name string, err error, fieldErrors map[string]string) error {
	if len(fieldErrors) > 0 {
		logconfig.Log.Debug("Request validation failed",
			zap.String("resource", name),
			zap.Any("fields", fieldErrors),
		)
	}
	return c.Status(fiber.StatusBadRequest).SendString(err.Error())
}

func respondError(c *fiber.Ctx, name, op string, err error, strict bool) error {
	status := apperr.Status(err, strict)
	if status >= fiber.StatusInternalServerError {
		logconfig.Log.Error("Storage operation failed",
			zap.String("resource", name),
			zap.String("op", op),
			zap.Error(err),
		)
	}
	return c.Status(status).SendString(apperr.Message(err))
}
