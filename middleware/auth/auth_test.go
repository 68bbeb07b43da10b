package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(New(apiKey))
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/listings", ok)
	app.Post("/submit-listing", ok)
	app.Get("/debug-config", ok)
	app.Get("/init-data", ok)
	app.Post("/init-data", ok)
	app.Get("/caches/prune", ok)
	return app
}

func status(t *testing.T, app *fiber.App, method, target, key string) int {
	req := httptest.NewRequest(method, target, nil)
	if key != "" {
		req.Header.Set(ApiKeyHeaderName, key)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestProtectedRoutesNeedKey(t *testing.T) {
	app := newTestApp("secret")

	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, fiber.MethodGet, "/debug-config", ""))
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, fiber.MethodPost, "/init-data", "wrong"))
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, fiber.MethodGet, "/caches/prune", ""))
	assert.Equal(t, fiber.StatusOK, status(t, app, fiber.MethodPost, "/init-data", "secret"))
	assert.Equal(t, fiber.StatusOK, status(t, app, fiber.MethodGet, "/debug-config", "secret"))
}

func TestPublicRoutesStayOpen(t *testing.T) {
	app := newTestApp("secret")

	assert.Equal(t, fiber.StatusOK, status(t, app, fiber.MethodGet, "/listings", ""))
	assert.Equal(t, fiber.StatusOK, status(t, app, fiber.MethodPost, "/submit-listing", ""))
	assert.Equal(t, fiber.StatusOK, status(t, app, fiber.MethodGet, "/init-data", ""))
}

func TestNoKeyConfigured(t *testing.T) {
	app := newTestApp("")

	assert.Equal(t, fiber.StatusOK, status(t, app, fiber.MethodGet, "/debug-config", ""))
	assert.Equal(t, fiber.StatusOK, status(t, app, fiber.MethodPost, "/init-data", ""))
}
