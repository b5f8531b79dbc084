package models

import "time"

// RouteMetrics is what the routing collaborator reports for a trip
type RouteMetrics struct {
	DistanceKm   float64 `json:"distance_km"`
	DurationMins int     `json:"duration_mins"`
}

// FareRequest asks for a quote between two places
type FareRequest struct {
	From      Place      `json:"from"`
	To        Place      `json:"to"`
	RideType  RideType   `json:"ride_type,omitempty"`
	VehicleID string     `json:"vehicle_id,omitempty"`
	CompanyID string     `json:"company_id,omitempty"`
	Rate      float64    `json:"rate,omitempty"`
	PickupAt  *time.Time `json:"pickup_at,omitempty"`
	ReturnAt  *time.Time `json:"return_at,omitempty"`
	// Corporate quotes skip the customer-facing service_*_enabled check
	Corporate bool `json:"corporate,omitempty"`
}

// FareQuote is the resolver output
type FareQuote struct {
	DistanceKm       float64   `json:"distance_km"`
	DurationMins     int       `json:"duration_mins"`
	BillableDistance float64   `json:"billable_distance"`
	Fare             int64     `json:"fare"`
	RideType         RideType  `json:"ride_type"`
	Rate             float64   `json:"rate"`
	MinimumApplied   bool      `json:"minimum_applied"`
	From             *Location `json:"from,omitempty"`
	To               *Location `json:"to,omitempty"`
}

// BillingResult is the outcome of applying the minimum-distance rule
type BillingResult struct {
	BillableDistance float64 `json:"billable_distance"`
	Fare             int64   `json:"fare"`
	MinimumApplied   bool    `json:"minimum_applied"`
}
