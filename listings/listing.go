package listings

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// TimeLayout matches JavaScript's Date.toISOString, which produced the stored documents.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

const MaxPhotos = 10

var ErrMalformedDocument = errors.New("listings document is not a JSON array of objects")

var (
	json = jsoniter.Config{
		EscapeHTML:             false,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()

	RoomTypes = []string{
		"单人间",
		"双人间",
		"合租（Shared）",
		"学生公寓（Dorm）",
		"整套公寓",
		"其他",
	}
)

type Listing struct {
	ID          string   `json:"id"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Contact     string   `json:"contact"`
	RoomType    string   `json:"roomType"`
	Photos      []string `json:"photos"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type Response struct {
	Success   bool      `json:"success"`
	Listings  []Listing `json:"listings"`
	Count     int       `json:"count"`
	Timestamp string    `json:"timestamp"`
}

type SubmitResponse struct {
	Success bool    `json:"success"`
	Listing Listing `json:"listing"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func IsValidRoomType(roomType string) bool {
	for _, rt := range RoomTypes {
		if rt == roomType {
			return true
		}
	}
	return false
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Decode parses the stored document and applies the defaulting rules to every
// record: missing photos become empty, missing price becomes 0, missing
// timestamps become now and missing strings become empty.
func Decode(doc []byte, now time.Time) ([]Listing, error) {
	var records []jsoniter.RawMessage
	if err := json.Unmarshal(doc, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	stamp := FormatTime(now)
	result := make([]Listing, 0, len(records))
	for i, record := range records {
		var fields map[string]jsoniter.RawMessage
		if err := json.Unmarshal(record, &fields); err != nil || fields == nil {
			return nil, fmt.Errorf("%w: record %d", ErrMalformedDocument, i)
		}

		l := Listing{
			ID:          stringField(fields["id"]),
			Address:     stringField(fields["address"]),
			Description: stringField(fields["description"]),
			Contact:     stringField(fields["contact"]),
			RoomType:    stringField(fields["roomType"]),
			Photos:      photosField(fields["photos"]),
			CreatedAt:   stringField(fields["createdAt"]),
			UpdatedAt:   stringField(fields["updatedAt"]),
		}
		if price, ok := ParseNumber(fields["price"]); ok {
			l.Price = price
		}
		if lat, ok := ParseNumber(fields["latitude"]); ok {
			l.Latitude = &lat
		}
		if lng, ok := ParseNumber(fields["longitude"]); ok {
			l.Longitude = &lng
		}
		if l.ID == "" {
			l.ID = fmt.Sprintf("listing-%d-%d", now.UnixMilli(), i)
		}
		l.fillDefaults(stamp)

		result = append(result, l)
	}

	return result, nil
}

// Normalize fills the fields a record may lack before it is stored.
func (l *Listing) Normalize(now time.Time) {
	if l.ID == "" {
		l.ID = fmt.Sprintf("listing-%d", now.UnixMilli())
	}
	l.fillDefaults(FormatTime(now))
}

func (l *Listing) fillDefaults(stamp string) {
	if l.Photos == nil {
		l.Photos = []string{}
	}
	if l.CreatedAt == "" {
		l.CreatedAt = stamp
	}
	if l.UpdatedAt == "" {
		l.UpdatedAt = stamp
	}
}

// Encode renders the collection the way it is stored: a two-space indented
// JSON array, never null.
func Encode(list []Listing) ([]byte, error) {
	out := make([]Listing, len(list))
	copy(out, list)
	for i := range out {
		if out[i].Photos == nil {
			out[i].Photos = []string{}
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// ParseNumber accepts JSON numbers and numeric strings such as "800" or "800 €".
func ParseNumber(raw jsoniter.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(strings.ReplaceAll(s, "€", ""))
		if s == "" {
			return 0, false
		}
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, false
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func stringField(raw jsoniter.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func photosField(raw jsoniter.RawMessage) []string {
	var items []interface{}
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return []string{}
	}

	photos := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			photos = append(photos, s)
		}
	}
	return photos
}
