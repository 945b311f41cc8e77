package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"pokemonreview/internal/http/middleware"
	"pokemonreview/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details []ValidationError `json:"details,omitempty"`
}

// messagePayload is the body of successful deletes.
type messagePayload struct {
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "POKEMON_NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorDetails(c, status, code, message, nil)
}

func writeErrorDetails(c *fiber.Ctx, status int, code, message string, details []ValidationError) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	return c.Status(status).JSON(res)
}

// serviceError translates known service errors into responses. Anything else
// is returned unchanged so the global ErrorHandler logs it and answers 500.
func serviceError(c *fiber.Ctx, err error) error {
	var nf *service.NotFoundError
	switch {
	case errors.As(err, &nf) && errors.Is(nf.Kind, service.ErrReviewNotFound):
		return writeError(c, fiber.StatusNotFound, "REVIEW_NOT_FOUND", nf.Message)
	case errors.As(err, &nf):
		return writeError(c, fiber.StatusNotFound, "POKEMON_NOT_FOUND", nf.Message)
	case errors.Is(err, service.ErrSpriteNotFound):
		return writeError(c, fiber.StatusNotFound, "SPRITE_NOT_FOUND", "pokemon has no sprite")
	case errors.Is(err, service.ErrInvalidID):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	case errors.Is(err, service.ErrUnsupportedType):
		return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_TYPE", "sprite must be an image")
	default:
		return err
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			log.WithError(err).WithFields(logrus.Fields{
				"request_id": requestIDFromCtx(c),
				"method":     c.Method(),
				"path":       c.Path(),
			}).Error("request failed")
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		switch fe.Code {
		case fiber.StatusBadRequest:
			return writeError(c, fe.Code, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, fe.Code, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, fe.Code, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, fe.Code, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, fe.Code, "INTERNAL_ERROR", "internal server error")
		}
	}
}
