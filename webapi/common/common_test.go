package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidAmount, fiber.StatusBadRequest},
		{fmt.Errorf("%w: bad", domain.ErrInvalidAmount), fiber.StatusBadRequest},
		{money.ErrInvalidDecimals, fiber.StatusBadRequest},
		{domain.ErrInvalidClient, fiber.StatusBadRequest},
		{domain.ErrInsufficientFunds, fiber.StatusUnprocessableEntity},
		{fmt.Errorf("%w: limit is 500.00 BRL", domain.ErrExceedsWithdrawalLimit), fiber.StatusUnprocessableEntity},
		{domain.ErrDailyWithdrawalLimitExceeded, fiber.StatusUnprocessableEntity},
		{domain.ErrAccountNotOwned, fiber.StatusForbidden},
		{domain.ErrClientNotFound, fiber.StatusNotFound},
		{domain.ErrAccountNotFound, fiber.StatusNotFound},
		{domain.ErrDuplicateTaxID, fiber.StatusConflict},
		{fmt.Errorf("%w: 1", domain.ErrDuplicateAccountNumber), fiber.StatusConflict},
		{fmt.Errorf("%w: -7", domain.ErrInvalidAccountNumber), fiber.StatusBadRequest},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorToStatusCode(tt.err), tt.err.Error())
	}
}

type sample struct {
	Name string `json:"name" validate:"required"`
}

func TestBindAndValidate(t *testing.T) {
	t.Parallel()
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[sample](c)
		if input == nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "ok", input)
	})

	do := func(body string) (int, map[string]any) {
		req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		out := map[string]any{}
		require.NoError(t, json.Unmarshal(raw, &out))
		return resp.StatusCode, out
	}

	status, body := do(`{"name":"Ana"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["message"])

	status, body = do(`{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", body["title"])
	assert.Equal(t, map[string]any{"Name": "required"}, body["errors"])

	status, body = do(`{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body["title"])
}
