package models

import "strings"

// RideType determines which pricing and visibility flags apply
type RideType string

const (
	RideTypeAirport   RideType = "airport"
	RideTypeOneway    RideType = "oneway"
	RideTypeRoundtrip RideType = "roundtrip"
)

// RideTypes lists every ride type in display order
var RideTypes = []RideType{RideTypeAirport, RideTypeOneway, RideTypeRoundtrip}

// Valid reports whether the ride type is known
func (r RideType) Valid() bool {
	switch r {
	case RideTypeAirport, RideTypeOneway, RideTypeRoundtrip:
		return true
	}
	return false
}

// InferRideType returns airport when either location mentions an airport, else fallback
func InferRideType(from, to string, fallback RideType) RideType {
	if strings.Contains(strings.ToLower(from), "airport") || strings.Contains(strings.ToLower(to), "airport") {
		return RideTypeAirport
	}
	return fallback
}

// PricingSettings is the global, server-held billing configuration.
// The six booleans are independent of each other.
type PricingSettings struct {
	MinKmThreshold          float64 `json:"min_km_threshold"`
	MinKmAirportApply       bool    `json:"min_km_airport_apply"`
	MinKmOnewayApply        bool    `json:"min_km_oneway_apply"`
	MinKmRoundtripApply     bool    `json:"min_km_roundtrip_apply"`
	ServiceAirportEnabled   bool    `json:"service_airport_enabled"`
	ServiceOnewayEnabled    bool    `json:"service_oneway_enabled"`
	ServiceRoundtripEnabled bool    `json:"service_roundtrip_enabled"`
}

// ApplyMinKm reports whether the minimum-distance rule may fire for the ride type
func (s PricingSettings) ApplyMinKm(rideType RideType) bool {
	switch rideType {
	case RideTypeAirport:
		return s.MinKmAirportApply
	case RideTypeOneway:
		return s.MinKmOnewayApply
	case RideTypeRoundtrip:
		return s.MinKmRoundtripApply
	}
	return false
}

// ServiceEnabled reports whether customers may book the ride type
func (s PricingSettings) ServiceEnabled(rideType RideType) bool {
	switch rideType {
	case RideTypeAirport:
		return s.ServiceAirportEnabled
	case RideTypeOneway:
		return s.ServiceOnewayEnabled
	case RideTypeRoundtrip:
		return s.ServiceRoundtripEnabled
	}
	return false
}

// EnabledRideTypes lists the ride types offered to customers
func (s PricingSettings) EnabledRideTypes() []RideType {
	enabled := make([]RideType, 0, len(RideTypes))
	for _, rt := range RideTypes {
		if s.ServiceEnabled(rt) {
			enabled = append(enabled, rt)
		}
	}
	return enabled
}
