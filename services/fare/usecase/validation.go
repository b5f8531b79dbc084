package usecase

import (
	"fmt"
	"time"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
)

// validateRequest catches input problems before any collaborator is called
func validateRequest(req models.FareRequest, now time.Time) error {
	verr := &apperror.ValidationError{}

	validatePlace(verr, "from", "Pickup location", req.From)
	validatePlace(verr, "to", "Drop location", req.To)

	if req.From.Query != "" && req.To.Query != "" && utils.SameText(req.From.Query, req.To.Query) {
		verr.Add("to", "Pickup and drop locations cannot be the same")
	}

	if req.RideType != "" && !req.RideType.Valid() {
		verr.Add("ride_type", fmt.Sprintf("Unknown ride type %q", req.RideType))
	}
	if req.Rate < 0 {
		verr.Add("rate", "Rate cannot be negative")
	}

	if req.PickupAt != nil && req.PickupAt.Before(now) {
		verr.Add("pickup_at", "Pickup time cannot be in the past")
	}
	if req.ReturnAt != nil {
		switch {
		case req.PickupAt != nil && !req.ReturnAt.After(*req.PickupAt):
			verr.Add("return_at", "Return time must be after the pickup time")
		case req.PickupAt == nil && req.ReturnAt.Before(now):
			verr.Add("return_at", "Return time cannot be in the past")
		}
	}

	return verr.OrNil()
}

func validatePlace(verr *apperror.ValidationError, field, label string, p models.Place) {
	if p.IsEmpty() {
		verr.Add(field, label+" is required")
		return
	}
	if p.HasCoordinates() && !p.Location.Valid() {
		verr.Add(field, label+" has invalid coordinates")
	}
}

// resolveRideType uses the explicit ride type, else infers airport from the place text
func resolveRideType(req models.FareRequest) models.RideType {
	if req.RideType.Valid() {
		return req.RideType
	}
	return models.InferRideType(req.From.Label(), req.To.Label(), models.RideTypeOneway)
}
