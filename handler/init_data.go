package handler

import (
	"time"

	"github.com/acikkaynak/housing-api-go/i18n"
	"github.com/acikkaynak/housing-api-go/listings"
	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InitData godoc
// @Summary            Replace all listings with the sample listings
// @Tags               Operations
// @Produce            json
// @Success            200 {object} InitDataResponse
// @Failure            500 {object} InitDataResponse
// @Security           ApiKeyAuth
// @Router             /init-data [POST]
func InitData(store ListingStore) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		lang := locale(ctx)
		samples := listings.Samples(time.Now())

		log.Logger().Info("initializing listings with sample data", zap.Int("count", len(samples)))
		if !store.Reset(ctx.UserContext(), samples) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(InitDataResponse{
				Success: false,
				Message: i18n.T(lang, i18n.InitFail),
			})
		}

		return ctx.JSON(InitDataResponse{
			Success: true,
			Message: i18n.T(lang, i18n.InitSuccess),
			Count:   len(samples),
		})
	}
}

// PreviewInitData godoc
// @Summary            Show the sample listings
// @Tags               Operations
// @Produce            json
// @Success            200 {object} InitDataPreview
// @Router             /init-data [GET]
func PreviewInitData(ctx *fiber.Ctx) error {
	return ctx.JSON(InitDataPreview{
		Message:    i18n.T(locale(ctx), i18n.InitUsePost),
		SampleData: listings.Samples(time.Now()),
	})
}
