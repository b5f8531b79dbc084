package usecase

import (
	"math"

	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
)

// MinimumBillableKm is the distance billed once the minimum-distance rule fires.
// It is fixed; min_km_threshold only decides whether the rule fires.
const MinimumBillableKm = 300.0

// ApplyBillingRule turns a routed distance into the billable distance and fare.
// Customer and corporate quotes both go through here.
func ApplyBillingRule(distanceKm float64, settings models.PricingSettings, rideType models.RideType, rate float64) models.BillingResult {
	billable := distanceKm
	applied := false
	if distanceKm > settings.MinKmThreshold && settings.ApplyMinKm(rideType) {
		billable = math.Max(MinimumBillableKm, distanceKm)
		applied = billable > distanceKm
	}

	return models.BillingResult{
		BillableDistance: billable,
		Fare:             utils.RoundRupees(billable * rate),
		MinimumApplied:   applied,
	}
}
