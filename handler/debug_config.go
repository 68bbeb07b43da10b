package handler

import (
	"time"

	"github.com/acikkaynak/housing-api-go/config"
	"github.com/acikkaynak/housing-api-go/i18n"
	"github.com/acikkaynak/housing-api-go/listings"
	"github.com/gofiber/fiber/v2"
)

// DebugConfig godoc
// @Summary            Report which storage settings are present
// @Tags               Operations
// @Produce            json
// @Success            200 {object} DebugConfigResponse
// @Security           ApiKeyAuth
// @Router             /debug-config [GET]
func DebugConfig(env string, cfg config.StorageConfig) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		lang := locale(ctx)

		return ctx.JSON(DebugConfigResponse{
			Environment: env,
			StorageConfig: map[string]string{
				"backend":         cfg.Backend,
				"endpoint":        i18n.Presence(lang, cfg.Endpoint),
				"accessKeyId":     i18n.Presence(lang, cfg.AccessKey),
				"secretAccessKey": i18n.Presence(lang, cfg.SecretKey),
				"bucket":          i18n.Presence(lang, cfg.Bucket),
				"publicUrl":       i18n.Presence(lang, cfg.PublicURL),
			},
			Timestamp: listings.FormatTime(time.Now()),
		})
	}
}
