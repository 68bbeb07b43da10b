package cache

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const CachedResponseHeader = "x-cached-response"

type Store interface {
	Get(key string) ([]byte, bool)
	SetKey(key string, value []byte, ttl time.Duration)
}

// New caches successful GET responses whose path starts with one of prefixes.
// Responses marked Cache-Control: no-store are passed through. Everything
// else, including /listings, always reaches the handler.
func New(store Store, ttl time.Duration, prefixes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet || !hasPrefix(c.Path(), prefixes) {
			return c.Next()
		}

		hashURL := uuid.NewSHA1(uuid.NameSpaceOID, []byte(c.OriginalURL())).String()
		if cacheData, ok := store.Get(hashURL); ok {
			c.Set(CachedResponseHeader, "true")
			c.Response().SetBodyRaw(cacheData)
			c.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
			return nil
		}

		if err := c.Next(); err != nil {
			return err
		}
		if cacheable(c) {
			body := append([]byte(nil), c.Response().Body()...)
			store.SetKey(hashURL, body, ttl)
		}
		return nil
	}
}

func cacheable(c *fiber.Ctx) bool {
	res := c.Response()
	if res.StatusCode() != fiber.StatusOK || len(res.Body()) == 0 {
		return false
	}
	return !strings.Contains(string(res.Header.Peek(fiber.HeaderCacheControl)), "no-store")
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
