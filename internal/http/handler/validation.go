package handler

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidationError describes one rejected field of a request body.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func validateStruct(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: "Invalid value", Type: "invalid"}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "Value is too long"
		}
		return "Value must be at most " + fe.Param()
	default:
		return "Invalid value"
	}
}

// bindBody parses the JSON body into dst and validates it. When ok is false the
// error response has been written and err is what the handler returns.
func bindBody(c *fiber.Ctx, dst any) (ok bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	if details := validateStruct(dst); details != nil {
		return false, writeErrorDetails(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "Invalid request data", details)
	}
	return true, nil
}

// paramID reads a positive integer path parameter.
func paramID(c *fiber.Ctx, name string) (int, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
