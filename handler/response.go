package handler

import (
	"github.com/acikkaynak/housing-api-go/i18n"
	"github.com/acikkaynak/housing-api-go/listings"
	"github.com/gofiber/fiber/v2"
)

type MessageResponse struct {
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
	Details string `json:"details,omitempty"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type InitDataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

type InitDataPreview struct {
	Message    string             `json:"message"`
	SampleData []listings.Listing `json:"sampleData"`
}

type DebugConfigResponse struct {
	Environment   string            `json:"environment"`
	StorageConfig map[string]string `json:"storageConfig"`
	Timestamp     string            `json:"timestamp"`
}

func locale(ctx *fiber.Ctx) i18n.Locale {
	cookie := ctx.Cookies("locale")
	if cookie == "" {
		cookie = ctx.Cookies("app_locale")
	}
	return i18n.Negotiate(cookie, ctx.Get(fiber.HeaderAcceptLanguage))
}

func fail(ctx *fiber.Ctx, status int, key i18n.Key) error {
	return ctx.Status(status).JSON(MessageResponse{Error: i18n.T(locale(ctx), key)})
}
