package models

import (
	"fmt"
	"strings"
)

// Location is a geographic coordinate pair
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"address,omitempty"`
}

// Valid reports whether the coordinates are within range
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// Place is a trip endpoint given either as free text or as coordinates
type Place struct {
	Query    string    `json:"query,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// PlaceFromText builds a free-text place
func PlaceFromText(query string) Place {
	return Place{Query: query}
}

// PlaceFromLocation builds a coordinate place
func PlaceFromLocation(lat, lng float64) Place {
	return Place{Location: &Location{Latitude: lat, Longitude: lng}}
}

// HasCoordinates reports whether geocoding can be skipped
func (p Place) HasCoordinates() bool {
	return p.Location != nil
}

// IsEmpty reports whether neither text nor coordinates were given
func (p Place) IsEmpty() bool {
	return p.Location == nil && strings.TrimSpace(p.Query) == ""
}

// Label is the human-readable form of the place
func (p Place) Label() string {
	if q := strings.TrimSpace(p.Query); q != "" {
		return q
	}
	if p.Location != nil {
		if p.Location.Address != "" {
			return p.Location.Address
		}
		return fmt.Sprintf("%.6f,%.6f", p.Location.Latitude, p.Location.Longitude)
	}
	return ""
}
