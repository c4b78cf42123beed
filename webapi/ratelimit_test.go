package webapi_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	// Create app with stricter rate limits for testing
	cfg := testutils.NewTestConfig()
	cfg.RateLimit.MaxRequests = 5
	cfg.RateLimit.Window = 1 * time.Second

	_, app, err := testutils.NewTestApp(cfg)
	require.NoError(t, err)

	get := func(ip string) int {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		if ip != "" {
			req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint: errcheck
		return resp.StatusCode
	}

	// Send requests until rate limit is hit
	for i := 0; i < 6; i++ {
		if i < 5 {
			assert.Equal(t, fiber.StatusOK, get(""), "Expected OK for request %d", i+1)
		} else {
			assert.Equal(t, fiber.StatusTooManyRequests, get(""), "Expected Too Many Requests for request %d", i+1)
		}
	}

	// A different forwarded client has its own bucket
	assert.Equal(t, fiber.StatusOK, get("203.0.113.7"))

	// Wait for the rate limit window to reset
	time.Sleep(1100 * time.Millisecond)

	assert.Equal(t, fiber.StatusOK, get(""), "Expected OK after rate limit reset")
}

func TestHealthAndRoutes(t *testing.T) {
	_, app, err := testutils.NewTestApp(testutils.NewTestConfig())
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/debug/routes", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
}
