package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const ApiKeyHeaderName = "X-Api-Key"

// New guards operational routes with the configured API key. When no key is
// configured every request passes.
func New(apiKey string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if apiKey == "" || !protected(ctx) {
			return ctx.Next()
		}

		if ctx.Get(ApiKeyHeaderName) != apiKey {
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}

		return ctx.Next()
	}
}

func protected(ctx *fiber.Ctx) bool {
	path := ctx.Path()
	switch {
	case strings.Contains(path, "pprof"):
		return true
	case strings.HasPrefix(path, "/caches/"):
		return true
	case path == "/debug-config":
		return true
	case path == "/init-data" && ctx.Method() == fiber.MethodPost:
		return true
	}
	return false
}
