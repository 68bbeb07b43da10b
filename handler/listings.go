package handler

import (
	"context"
	"errors"
	"time"

	"github.com/acikkaynak/housing-api-go/broker"
	"github.com/acikkaynak/housing-api-go/i18n"
	"github.com/acikkaynak/housing-api-go/listings"
	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ListingStore interface {
	ReadAll(ctx context.Context) []listings.Listing
	Append(ctx context.Context, l listings.Listing) (listings.Listing, error)
	Reset(ctx context.Context, list []listings.Listing) bool
}

type ListingsHandler struct {
	store     ListingStore
	publisher broker.Publisher
	topic     string
	now       func() time.Time
}

func NewListingsHandler(store ListingStore, publisher broker.Publisher, topic string) *ListingsHandler {
	return &ListingsHandler{
		store:     store,
		publisher: publisher,
		topic:     topic,
		now:       time.Now,
	}
}

// HandleList godoc
// @Summary            Get every listing
// @Tags               Listing
// @Produce            json
// @Success            200 {object} listings.Response
// @Failure            500 {object} listings.ErrorResponse
// @Router             /listings [GET]
func (h *ListingsHandler) HandleList(ctx *fiber.Ctx) error {
	data := h.store.ReadAll(ctx.UserContext())

	ctx.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")

	return ctx.JSON(listings.Response{
		Success:   true,
		Listings:  data,
		Count:     len(data),
		Timestamp: listings.FormatTime(h.now()),
	})
}

// HandleSubmit godoc
// @Summary            Submit a listing
// @Tags               Listing
// @Accept             json
// @Produce            json
// @Success            200 {object} listings.SubmitResponse
// @Failure            400 {object} MessageResponse
// @Failure            500 {object} MessageResponse
// @Param              body body listings.SubmitRequest true "RequestBody"
// @Router             /submit-listing [POST]
func (h *ListingsHandler) HandleSubmit(ctx *fiber.Ctx) error {
	req, err := listings.ParseSubmitRequest(ctx.Body())
	if err != nil {
		return fail(ctx, fiber.StatusBadRequest, i18n.InvalidBody)
	}

	l, err := req.NewListing(h.now())
	if err != nil {
		return fail(ctx, fiber.StatusBadRequest, validationKey(err))
	}

	saved, err := h.store.Append(ctx.UserContext(), l)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(MessageResponse{
			Error:  i18n.T(locale(ctx), i18n.SubmitFailed),
			Detail: err.Error(),
		})
	}

	h.publishCreated(ctx.UserContext(), saved)

	return ctx.JSON(listings.SubmitResponse{Success: true, Listing: saved})
}

func (h *ListingsHandler) publishCreated(ctx context.Context, l listings.Listing) {
	payload, err := listings.NewCreatedEvent(l, h.now()).Marshal()
	if err != nil {
		log.Logger().Error("failed to encode listing event", zap.String("id", l.ID), zap.Error(err))
		return
	}

	if err := h.publisher.Publish(ctx, h.topic, l.ID, payload); err != nil {
		log.Logger().Warn("failed to publish listing event", zap.String("id", l.ID), zap.Error(err))
	}
}

func validationKey(err error) i18n.Key {
	switch {
	case errors.Is(err, listings.ErrInvalidPrice):
		return i18n.InvalidPrice
	case errors.Is(err, listings.ErrTooManyPhotos):
		return i18n.TooManyPhotos
	case errors.Is(err, listings.ErrInvalidRoomType):
		return i18n.InvalidRoomType
	default:
		return i18n.RequiredFields
	}
}
