package listings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var (
	ErrRequiredFields  = errors.New("address, price and contact are required")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrTooManyPhotos   = fmt.Errorf("at most %d photos are allowed", MaxPhotos)
	ErrInvalidRoomType = errors.New("unknown room type")
)

// SubmitRequest is the body of POST /submit-listing. Price and coordinates stay
// raw because the form posts them either as numbers or as strings.
type SubmitRequest struct {
	Address     string              `json:"address"`
	Latitude    jsoniter.RawMessage `json:"latitude,omitempty" swaggertype:"number"`
	Longitude   jsoniter.RawMessage `json:"longitude,omitempty" swaggertype:"number"`
	Price       jsoniter.RawMessage `json:"price" swaggertype:"number"`
	Contact     string              `json:"contact"`
	RoomType    string              `json:"roomType,omitempty"`
	Description string              `json:"description,omitempty"`
	Photos      []string            `json:"photos,omitempty"`
}

func ParseSubmitRequest(body []byte) (*SubmitRequest, error) {
	var req SubmitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("failed to decode request. err: %w", err)
	}
	return &req, nil
}

// NewListing validates the request and builds the record to append. The
// returned error is one of the Err* validation errors of this package.
func (r *SubmitRequest) NewListing(now time.Time) (Listing, error) {
	address := strings.TrimSpace(r.Address)
	contact := strings.TrimSpace(r.Contact)
	if address == "" || contact == "" || isBlank(r.Price) {
		return Listing{}, ErrRequiredFields
	}

	price, ok := ParseNumber(r.Price)
	if !ok || price < 0 {
		return Listing{}, ErrInvalidPrice
	}
	if len(r.Photos) > MaxPhotos {
		return Listing{}, ErrTooManyPhotos
	}
	roomType := strings.TrimSpace(r.RoomType)
	if roomType != "" && !IsValidRoomType(roomType) {
		return Listing{}, ErrInvalidRoomType
	}

	photos := make([]string, 0, len(r.Photos))
	for _, p := range r.Photos {
		if p = strings.TrimSpace(p); p != "" {
			photos = append(photos, p)
		}
	}

	stamp := FormatTime(now)
	l := Listing{
		ID:          fmt.Sprintf("listing-%d", now.UnixMilli()),
		Address:     address,
		Price:       price,
		Description: r.Description,
		Contact:     contact,
		RoomType:    roomType,
		Photos:      photos,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
	// the form sends 0 when nothing was picked on the map
	if lat, ok := ParseNumber(r.Latitude); ok && lat != 0 {
		l.Latitude = &lat
	}
	if lng, ok := ParseNumber(r.Longitude); ok && lng != 0 {
		l.Longitude = &lng
	}

	return l, nil
}

func isBlank(raw jsoniter.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == `""`
}
