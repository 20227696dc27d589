package apierror

import (
	"errors"
	"fmt"

	"arche-openrefine/core/logger"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Kind classifies a failure. The taxonomy is flat on purpose: every failure
// maps to exactly one HTTP status code.
type Kind int

const (
	// KindInternal covers everything not classified otherwise, including datastore faults.
	KindInternal Kind = iota
	// KindBadRequest is a malformed batch or data extension payload.
	KindBadRequest
	// KindNotFound is an unknown path, an unsupported suggest type or an unimplemented operation.
	KindNotFound
)

// Code returns the HTTP status code associated with the kind.
func (k Kind) Code() int {
	switch k {
	case KindBadRequest:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a classified failure produced by a request handler.
type Error struct {
	// Kind selects the status code.
	Kind Kind
	// Message is the text returned to the caller in production mode.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// BadRequest returns a KindBadRequest failure.
func BadRequest(message string, err error) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Err: err}
}

// NotFound returns a KindNotFound failure.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps err as a KindInternal failure.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// Code extracts the status code carried by err. Codes outside [400,599]
// collapse to 500.
func Code(err error) int {
	code := fiber.StatusInternalServerError

	var apiErr *Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Kind.Code()
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	}

	if code < 400 || code > 599 {
		return fiber.StatusInternalServerError
	}
	return code
}

// Handler returns the fiber error handler rendering failures as plain text.
// In production the body is the classified message only, the wrapped cause
// is logged but not sent. In debug mode the body is a full dump of the error
// value.
func Handler(debug bool, log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := Code(err)

		l := logger.WithRayID(log, c)
		if code >= fiber.StatusInternalServerError {
			l.Error("Request failed", zap.Int("status", code), zap.Error(err))
		} else {
			l.Debug("Request rejected", zap.Int("status", code), zap.Error(err))
		}

		body := err.Error()
		var apiErr *Error
		if errors.As(err, &apiErr) {
			body = apiErr.Message
		}
		if debug {
			body = spew.Sdump(err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(body)
	}
}

// NotFoundHandler is the catch-all route. Its message points the caller at
// the service manifest.
func NotFoundHandler(manifestURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return NotFound("Page not found. Service's manifest is available on " + manifestURL)
	}
}
