package handler

import (
	"errors"

	"github.com/acikkaynak/housing-api-go/storage"
	"github.com/gofiber/fiber/v2"
)

// ServeImage streams a stored photo for backends without a public bucket URL.
func ServeImage(bucket storage.Bucket) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		name := ctx.Params("*")
		if name == "" {
			return ctx.SendStatus(fiber.StatusNotFound)
		}

		obj, err := bucket.Get(ctx.UserContext(), storage.ImagePrefix+name)
		if errors.Is(err, storage.ErrObjectNotFound) {
			return ctx.SendStatus(fiber.StatusNotFound)
		}
		if err != nil {
			return err
		}

		if obj.ContentType != "" {
			ctx.Set(fiber.HeaderContentType, obj.ContentType)
		}
		ctx.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
		return ctx.Send(obj.Body)
	}
}
