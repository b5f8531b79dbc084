package utils

import (
	"github.com/mmcloughlin/geohash"
	"github.com/urbancabz/console/internal/pkg/models"
)

// RoutePrecision is the geohash precision for route cache keys, roughly 150 m cells
const RoutePrecision uint = 7

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// RouteCellKey identifies a directed trip by the geohash cells of its ends
func RouteCellKey(from, to models.Location) string {
	return EncodeLocation(from, RoutePrecision) + ":" + EncodeLocation(to, RoutePrecision)
}
