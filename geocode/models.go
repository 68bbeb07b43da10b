package geocode

import (
	"strconv"
	"strings"
)

// Candidate is one address suggestion returned by the provider.
type Candidate struct {
	PlaceID     int64    `json:"placeId,omitempty"`
	DisplayName string   `json:"displayName"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Type        string   `json:"type,omitempty"`
	Class       string   `json:"class,omitempty"`
	Importance  *float64 `json:"importance,omitempty"`
}

// place is a search or reverse result as the Nominatim API encodes it.
type place struct {
	PlaceID     int64    `json:"place_id"`
	DisplayName string   `json:"display_name"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Type        string   `json:"type"`
	Class       string   `json:"class"`
	Importance  *float64 `json:"importance"`
	Error       string   `json:"error"`
}

func (p place) candidate() Candidate {
	lat, _ := strconv.ParseFloat(strings.TrimSpace(p.Lat), 64)
	lng, _ := strconv.ParseFloat(strings.TrimSpace(p.Lon), 64)
	return Candidate{
		PlaceID:     p.PlaceID,
		DisplayName: p.DisplayName,
		Latitude:    lat,
		Longitude:   lng,
		Type:        p.Type,
		Class:       p.Class,
		Importance:  p.Importance,
	}
}

func (c Candidate) importance() float64 {
	if c.Importance == nil {
		return 0
	}
	return *c.Importance
}

type SearchResponse struct {
	Query   string      `json:"query"`
	Count   int         `json:"count"`
	Results []Candidate `json:"results"`
}

type AddressResponse struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SelectRequest struct {
	Input     string    `json:"input"`
	Candidate Candidate `json:"candidate"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
