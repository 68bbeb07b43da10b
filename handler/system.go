package handler

import (
	"time"

	"github.com/acikkaynak/housing-api-go/listings"
	"github.com/gofiber/fiber/v2"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthCheck godoc
// @Summary            Report that the API process is serving
// @Tags               Healthcheck
// @Produce            json
// @Success            200 {object} HealthResponse
// @Router             /healthcheck [GET]
func HealthCheck(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderCacheControl, "no-store")
	return ctx.JSON(HealthResponse{
		Status:    "ok",
		Timestamp: listings.FormatTime(time.Now()),
	})
}

// RedirectSwagger sends the bare root to the API documentation.
func RedirectSwagger(ctx *fiber.Ctx) error {
	return ctx.Redirect("/swagger/index.html", fiber.StatusMovedPermanently)
}
