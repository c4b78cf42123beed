// Package webapi provides the HTTP API of the ledger. It is organized into
// sub-packages:
// - ledger: client, account and transaction endpoints
// - common: response envelopes, problem details and request binding
package webapi

import (
	"errors"
	"strings"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/app"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/config"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/webapi/common"
	ledgerweb "github.com/Krsoliveira/Sistema-bancario-DIO-PRO/webapi/ledger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "Sistema Bancário",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, utils.StatusMessage(common.ErrorToStatusCode(err)), err)
		},
	})

	rl := a.Config.RateLimit
	if rl == nil {
		rl = config.Default().RateLimit
	}
	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        rl.MaxRequests,
		Expiration: rl.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				first, _, _ := strings.Cut(forwardedFor, ",")
				return strings.TrimSpace(first)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	if a.Config.Env != "test" {
		fiberApp.Use(logger.New())
	}

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Sistema Bancário API is running! 🚀")
	})

	fiberApp.Get("/debug/routes", func(c *fiber.Ctx) error {
		var routeList []fiber.Map
		for _, route := range fiberApp.GetRoutes(true) {
			routeList = append(routeList, fiber.Map{
				"method": route.Method,
				"path":   route.Path,
			})
		}
		return c.JSON(routeList)
	})

	ledgerweb.Routes(fiberApp, a.LedgerService)
	return fiberApp
}
