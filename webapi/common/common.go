// Package common holds the response envelopes, error mapping and request
// binding shared by the HTTP handlers.
package common

import (
	"errors"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

var validate = validator.New()

// SuccessResponseJSON writes a Response envelope with the given status.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. The status is derived
// from err with ErrorToStatusCode. Optional extras override the defaults: a
// string sets the detail, an int sets the status, anything else is reported
// under "errors".
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, extras ...any) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   ErrorToStatusCode(err),
		Instance: c.OriginalURL(),
	}
	if err != nil {
		pd.Detail = err.Error()
	}
	for _, extra := range extras {
		switch v := extra.(type) {
		case string:
			pd.Detail = v
		case int:
			pd.Status = v
		default:
			pd.Errors = v
		}
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(pd.Status).JSON(pd)
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusBadRequest
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrInvalidDecimals),
		errors.Is(err, domain.ErrInvalidClient),
		errors.Is(err, domain.ErrInvalidAccountNumber):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrExceedsWithdrawalLimit),
		errors.Is(err, domain.ErrDailyWithdrawalLimitExceeded),
		errors.Is(err, money.ErrMismatchedCurrencies):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAccountNotOwned):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateTaxID),
		errors.Is(err, domain.ErrDuplicateAccountNumber):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest, fields)
		}
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}
