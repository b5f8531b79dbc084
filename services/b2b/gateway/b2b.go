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
	"github.com/urbancabz/console/services/b2b"
)

type b2bGW struct {
	api *httpclient.APIClient
}

// NewB2BGW creates the corporate bookings gateway
func NewB2BGW(api *httpclient.APIClient) b2b.B2BGW {
	return &b2bGW{api: api}
}

func bookingPath(bookingID, action string) string {
	path := "/b2b/bookings/" + url.PathEscape(bookingID)
	if action != "" {
		path += "/" + action
	}
	return path
}

// FetchBooking reads GET /b2b/bookings/:id
func (g *b2bGW) FetchBooking(ctx context.Context, bookingID string) (*models.B2BBooking, error) {
	var booking models.B2BBooking
	if err := g.api.GetObject(ctx, bookingPath(bookingID, ""), "booking", &booking); err != nil {
		return nil, err
	}
	if booking.ID == "" {
		return nil, fmt.Errorf("%w: b2b booking %s", apperror.ErrNotFound, bookingID)
	}
	return &booking, nil
}

// CreateBooking posts a priced booking to POST /b2b/bookings
func (g *b2bGW) CreateBooking(ctx context.Context, booking models.NewBooking) (*models.B2BBooking, error) {
	env, err := g.api.Do(ctx, nethttp.MethodPost, "/b2b/bookings", booking)
	if err != nil {
		return nil, err
	}
	var created models.B2BBooking
	if raw := envelope.UnwrapObject(env.Data, "booking"); len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &created); err != nil {
			return nil, fmt.Errorf("%w: decode b2b booking: %v", apperror.ErrNetwork, err)
		}
	}
	return &created, nil
}

// AssignDriver creates or overwrites the assignment via POST /b2b/bookings/:id/assign
func (g *b2bGW) AssignDriver(ctx context.Context, bookingID string, assignment models.Assignment) error {
	return g.api.PostJSON(ctx, bookingPath(bookingID, "assign"), assignment, nil)
}

// StartTrip calls POST /b2b/bookings/:id/start
func (g *b2bGW) StartTrip(ctx context.Context, bookingID string) error {
	return g.api.PostJSON(ctx, bookingPath(bookingID, "start"), struct{}{}, nil)
}

// CompleteTrip calls POST /b2b/bookings/:id/complete and returns the recomputed total
func (g *b2bGW) CompleteTrip(ctx context.Context, bookingID string, req models.CompleteRequest) (*models.CompletionResult, error) {
	env, err := g.api.Do(ctx, nethttp.MethodPost, bookingPath(bookingID, "complete"), req)
	if err != nil {
		return nil, err
	}

	var result struct {
		NewTotal    *float64 `json:"new_total"`
		TotalAmount *float64 `json:"total_amount"`
	}
	raw := envelope.UnwrapObject(env.Data, "booking")
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &result); err != nil {
			return nil, fmt.Errorf("%w: decode completion: %v", apperror.ErrNetwork, err)
		}
	}
	if result.NewTotal == nil && len(raw) > 0 && string(raw) != "null" {
		_ = json.Unmarshal(raw, &result)
	}

	switch {
	case result.NewTotal != nil:
		return &models.CompletionResult{BookingID: bookingID, NewTotal: *result.NewTotal}, nil
	case result.TotalAmount != nil:
		return &models.CompletionResult{BookingID: bookingID, NewTotal: *result.TotalAmount}, nil
	}
	return nil, fmt.Errorf("%w: completion response carries no total", apperror.ErrNetwork)
}

// CancelBooking calls POST /b2b/bookings/:id/cancel with the reason
func (g *b2bGW) CancelBooking(ctx context.Context, bookingID string, reason string) error {
	return g.api.PostJSON(ctx, bookingPath(bookingID, "cancel"), models.CancelRequest{Reason: reason}, nil)
}

// RecordPayment posts the offline settlement to POST /b2b/bookings/:id/payment
func (g *b2bGW) RecordPayment(ctx context.Context, bookingID string, req models.OfflinePaymentRequest) error {
	return g.api.PostJSON(ctx, bookingPath(bookingID, "payment"), req, nil)
}
