package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/envelope"
	httpclient "github.com/urbancabz/console/internal/pkg/http"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/bookings"
)

type bookingGW struct {
	api *httpclient.APIClient
}

// NewBookingGW creates the admin bookings gateway
func NewBookingGW(api *httpclient.APIClient) bookings.BookingGW {
	return &bookingGW{api: api}
}

func bookingPath(bookingID, action string) string {
	path := "/admin/bookings/" + url.PathEscape(bookingID)
	if action != "" {
		path += "/" + action
	}
	return path
}

// FetchBooking reads GET /admin/bookings/:id
func (g *bookingGW) FetchBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := g.api.GetObject(ctx, bookingPath(bookingID, ""), "booking", &booking); err != nil {
		return nil, err
	}
	if booking.ID == "" {
		return nil, fmt.Errorf("%w: booking %s", apperror.ErrNotFound, bookingID)
	}
	return &booking, nil
}

// CreateBooking posts a priced booking to POST /admin/bookings
func (g *bookingGW) CreateBooking(ctx context.Context, booking models.NewBooking) (*models.Booking, error) {
	env, err := g.api.Do(ctx, nethttp.MethodPost, "/admin/bookings", booking)
	if err != nil {
		return nil, err
	}
	var created models.Booking
	if raw := envelope.UnwrapObject(env.Data, "booking"); len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &created); err != nil {
			return nil, fmt.Errorf("%w: decode booking: %v", apperror.ErrNetwork, err)
		}
	}
	return &created, nil
}

// AssignTaxi posts the assignment to POST /admin/bookings/:id/assign-taxi
func (g *bookingGW) AssignTaxi(ctx context.Context, bookingID string, assignment models.Assignment) error {
	return g.api.PostJSON(ctx, bookingPath(bookingID, "assign-taxi"), assignment, nil)
}

// StartTrip calls POST /admin/bookings/:id/start
func (g *bookingGW) StartTrip(ctx context.Context, bookingID string) error {
	return g.api.PostJSON(ctx, bookingPath(bookingID, "start"), struct{}{}, nil)
}

// CompleteTrip calls POST /admin/bookings/:id/complete and returns the recomputed total
func (g *bookingGW) CompleteTrip(ctx context.Context, bookingID string, req models.CompleteRequest) (*models.CompletionResult, error) {
	env, err := g.api.Do(ctx, nethttp.MethodPost, bookingPath(bookingID, "complete"), req)
	if err != nil {
		return nil, err
	}
	total, err := completedTotal(env.Data)
	if err != nil {
		return nil, err
	}
	return &models.CompletionResult{BookingID: bookingID, NewTotal: total}, nil
}

// CancelBooking calls POST /admin/bookings/:id/cancel with the reason
func (g *bookingGW) CancelBooking(ctx context.Context, bookingID string, reason string) error {
	return g.api.PostJSON(ctx, bookingPath(bookingID, "cancel"), models.CancelRequest{Reason: reason}, nil)
}

// completedTotal reads data.new_total, falling back to the total_amount of the
// returned booking. An answer carrying neither is a broken response.
func completedTotal(data json.RawMessage) (float64, error) {
	if len(data) == 0 || string(data) == "null" {
		return 0, fmt.Errorf("%w: completion response carries no total", apperror.ErrNetwork)
	}

	var result struct {
		NewTotal *float64 `json:"new_total"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return 0, fmt.Errorf("%w: decode completion: %v", apperror.ErrNetwork, err)
	}
	if result.NewTotal != nil {
		return *result.NewTotal, nil
	}

	var booking struct {
		TotalAmount *float64 `json:"total_amount"`
	}
	if err := json.Unmarshal(envelope.UnwrapObject(data, "booking"), &booking); err != nil {
		return 0, fmt.Errorf("%w: decode completion: %v", apperror.ErrNetwork, err)
	}
	if booking.TotalAmount == nil {
		return 0, fmt.Errorf("%w: completion response carries no total", apperror.ErrNetwork)
	}
	return *booking.TotalAmount, nil
}
