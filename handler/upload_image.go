package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/acikkaynak/housing-api-go/i18n"
	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/acikkaynak/housing-api-go/pkg/metrics"
	"github.com/acikkaynak/housing-api-go/storage"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const MaxImageSize = 5 * 1024 * 1024

// UploadImage godoc
// @Summary            Upload a listing photo
// @Tags               Image
// @Accept             multipart/form-data
// @Produce            json
// @Success            200 {object} UploadResponse
// @Failure            400 {object} MessageResponse
// @Failure            500 {object} MessageResponse
// @Param              file formData file true "Image"
// @Router             /upload-image [POST]
func UploadImage(bucket storage.Bucket, publicURL string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if publicURL == "" {
			log.Logger().Error("image upload rejected: CLOUDFLARE_R2_PUBLIC_URL is not set")
			return fail(ctx, fiber.StatusInternalServerError, i18n.ServerConfig)
		}

		file, err := ctx.FormFile("file")
		if err != nil || file == nil {
			return fail(ctx, fiber.StatusBadRequest, i18n.NoFile)
		}

		contentType := file.Header.Get(fiber.HeaderContentType)
		if !strings.HasPrefix(contentType, "image/") {
			return fail(ctx, fiber.StatusBadRequest, i18n.NotAnImage)
		}
		if file.Size > MaxImageSize {
			return fail(ctx, fiber.StatusBadRequest, i18n.FileTooLarge)
		}

		body, err := readFile(file)
		if err == nil && len(body) > MaxImageSize {
			return fail(ctx, fiber.StatusBadRequest, i18n.FileTooLarge)
		}

		key := storage.ImageKey(file.Filename, time.Now())
		if err == nil {
			err = bucket.Put(ctx.UserContext(), key, storage.Object{Body: body, ContentType: contentType})
		}
		if err != nil {
			log.Logger().Error("image upload failed", zap.String("key", key), zap.Error(err))
			return ctx.Status(fiber.StatusInternalServerError).JSON(MessageResponse{
				Error:   i18n.T(locale(ctx), i18n.UploadFailed),
				Details: err.Error(),
			})
		}

		metrics.ImagesUploaded.Inc()
		url := storage.PublicURL(publicURL, key)
		log.Logger().Info("image uploaded",
			zap.String("key", key),
			zap.Int("size", len(body)),
			zap.String("content_type", contentType))

		return ctx.JSON(UploadResponse{URL: url})
	}
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open uploaded file: %w", err)
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, MaxImageSize+1))
}
