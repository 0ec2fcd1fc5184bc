// Package webapi provides the HTTP surface of the ledger. It is
// organized into sub-packages per resource:
// - account: account endpoints including deposits
// - transfer: transfer creation and reversal
// - payment: payment creation and deletion
// - creditor: creditor reference data
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mfcarvalho/bookkeep/pkg/app"
	accountweb "github.com/mfcarvalho/bookkeep/webapi/account"
	"github.com/mfcarvalho/bookkeep/webapi/common"
	creditorweb "github.com/mfcarvalho/bookkeep/webapi/creditor"
	paymentweb "github.com/mfcarvalho/bookkeep/webapi/payment"
	transferweb "github.com/mfcarvalho/bookkeep/webapi/transfer"
)

// SetupApp initializes Fiber with middleware and all resource routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return common.ProblemDetailsJSON(c, fiberErr.Message, err, fiberErr.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Rate limiting keyed on the originating client IP, honoring
	// proxy headers when present.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
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
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bookkeep API is running")
	})

	accountweb.Routes(fiberApp, a.AccountService)
	transferweb.Routes(fiberApp, a.TransferService)
	paymentweb.Routes(fiberApp, a.PaymentService)
	creditorweb.Routes(fiberApp, a.CreditorService)
	return fiberApp
}
