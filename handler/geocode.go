package handler

import (
	"context"
	"math"
	"strconv"

	"github.com/acikkaynak/housing-api-go/geocode"
	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AddressResolver interface {
	Lookup(ctx context.Context, query string) ([]geocode.Candidate, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

type GeocodeHandler struct {
	resolver AddressResolver
}

func NewGeocodeHandler(resolver AddressResolver) *GeocodeHandler {
	return &GeocodeHandler{resolver: resolver}
}

// HandleSearch godoc
// @Summary            Search address suggestions
// @Tags               Geocode
// @Produce            json
// @Success            200 {object} geocode.SearchResponse
// @Param              q query string true "Query"
// @Router             /geocode/search [GET]
func (h *GeocodeHandler) HandleSearch(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	results, err := h.resolver.Lookup(ctx.UserContext(), query)
	if err != nil {
		// an outage answers with no suggestions but must not be cached
		log.Logger().Error("address search failed", zap.String("query", query), zap.Error(err))
		ctx.Set(fiber.HeaderCacheControl, "no-store")
	}

	return ctx.JSON(geocode.SearchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	})
}

// HandleReverse godoc
// @Summary            Resolve coordinates to a display address
// @Tags               Geocode
// @Produce            json
// @Success            200 {object} geocode.AddressResponse
// @Failure            400 {object} geocode.ErrorResponse
// @Failure            502 {object} geocode.ErrorResponse
// @Param              lat query number true "Latitude"
// @Param              lng query number true "Longitude"
// @Router             /geocode/reverse [GET]
func (h *GeocodeHandler) HandleReverse(ctx *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(ctx.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(ctx.Query("lng"), 64)
	if errLat != nil || errLng != nil || math.Abs(lat) > 90 || math.Abs(lng) > 180 {
		return ctx.Status(fiber.StatusBadRequest).JSON(geocode.ErrorResponse{Error: "invalid coordinates"})
	}

	address, err := h.resolver.ReverseGeocode(ctx.UserContext(), lat, lng)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(geocode.ErrorResponse{Error: err.Error()})
	}

	return ctx.JSON(geocode.AddressResponse{Address: address, Latitude: lat, Longitude: lng})
}

// HandleSelect godoc
// @Summary            Merge a typed house number into a chosen suggestion
// @Tags               Geocode
// @Accept             json
// @Produce            json
// @Success            200 {object} geocode.AddressResponse
// @Param              body body geocode.SelectRequest true "RequestBody"
// @Router             /geocode/select [POST]
func (h *GeocodeHandler) HandleSelect(ctx *fiber.Ctx) error {
	var req geocode.SelectRequest
	if err := ctx.BodyParser(&req); err != nil || req.Candidate.DisplayName == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(geocode.ErrorResponse{Error: "a candidate with a display name is required"})
	}

	return ctx.JSON(geocode.AddressResponse{
		Address:   geocode.MergeHouseNumber(req.Input, req.Candidate),
		Latitude:  req.Candidate.Latitude,
		Longitude: req.Candidate.Longitude,
	})
}
