// Package requests defines the write payloads accepted over the wire and
// their validation. Bodies arrive either as JSON or url-encoded forms; the
// same struct decodes both. Optional fields are pointers so an omitted key
// stays distinguishable from an empty string or zero.
package requests

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseAndValidate decodes the request body into T and runs struct
// validation. The map carries per-field messages for the caller to log or
// echo back; the error is the summary.
func parseAndValidate[T any](c *fiber.Ctx) (T, map[string]string, error) {
	var req T

	if err := c.BodyParser(&req); err != nil {
		return req, map[string]string{}, errors.New("invalid request format")
	}

	if err := validate.Struct(req); err != nil {
		return req, fieldErrors(err), errors.New("invalid request body")
	}

	return req, map[string]string{}, nil
}

func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "gt":
			out[field] = field + " must be greater than " + fe.Param()
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}
