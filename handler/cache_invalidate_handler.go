package handler

import (
	"github.com/gofiber/fiber/v2"
)

type Pruner interface {
	Prune() error
}

func InvalidateCache(cacheRepo Pruner) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := cacheRepo.Prune()

		if err != nil {
			ctx.Status(fiber.StatusInternalServerError)
			return ctx.SendString(err.Error())
		}

		return ctx.SendStatus(fiber.StatusOK)
	}
}
