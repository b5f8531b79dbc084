package gateway

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/urbancabz/console/internal/pkg/apperror"
	httpclient "github.com/urbancabz/console/internal/pkg/http"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/fare"
)

// nominatimPlace is one result of a Nominatim search or reverse lookup
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Error       string `json:"error,omitempty"`
}

// osrmResponse is the part of an OSRM route answer the resolver reads
type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

type routingGW struct {
	client     *httpclient.CollaboratorClient
	geocodeURL string
	routeURL   string
}

// NewRoutingGW creates a gateway for Nominatim-compatible geocoding and
// OSRM-compatible routing
func NewRoutingGW(client *httpclient.CollaboratorClient, cfg models.RoutingConfig) fare.RoutingGW {
	return &routingGW{
		client:     client,
		geocodeURL: strings.TrimRight(cfg.GeocodeURL, "/"),
		routeURL:   strings.TrimRight(cfg.RouteURL, "/"),
	}
}

// Geocode resolves free text to the best matching coordinates
func (g *routingGW) Geocode(ctx context.Context, query string) (*models.Location, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")

	var results []nominatimPlace
	if err := g.client.GetJSON(ctx, g.geocodeURL+"/search?"+q.Encode(), &results); err != nil {
		return nil, collaboratorError("geocode", err)
	}
	if len(results) == 0 {
		return nil, &apperror.CollaboratorError{Op: "geocode", Err: fmt.Errorf("no match for %q", query)}
	}
	return results[0].location("geocode")
}

// Reverse names the place at the given coordinates
func (g *routingGW) Reverse(ctx context.Context, lat, lng float64) (*models.Location, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', 6, 64))
	q.Set("format", "json")

	var result nominatimPlace
	if err := g.client.GetJSON(ctx, g.geocodeURL+"/reverse?"+q.Encode(), &result); err != nil {
		return nil, collaboratorError("reverse geocode", err)
	}
	if result.Error != "" {
		return nil, &apperror.CollaboratorError{Op: "reverse geocode", Err: errors.New(result.Error)}
	}
	return result.location("reverse geocode")
}

// Route returns the driving distance, one decimal km, and duration, whole minutes
func (g *routingGW) Route(ctx context.Context, from, to models.Location) (*models.RouteMetrics, error) {
	endpoint := fmt.Sprintf("%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?overview=false",
		g.routeURL, from.Longitude, from.Latitude, to.Longitude, to.Latitude)

	var resp osrmResponse
	if err := g.client.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, collaboratorError("route", err)
	}
	if resp.Code != "Ok" || len(resp.Routes) == 0 {
		reason := resp.Message
		if reason == "" {
			reason = "no route found"
		}
		return nil, &apperror.CollaboratorError{Op: "route", Err: errors.New(reason)}
	}

	route := resp.Routes[0]
	return &models.RouteMetrics{
		DistanceKm:   math.Round(route.Distance/100) / 10,
		DurationMins: int(math.Round(route.Duration / 60)),
	}, nil
}

func (p nominatimPlace) location(op string) (*models.Location, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, &apperror.CollaboratorError{Op: op, Err: fmt.Errorf("bad latitude %q", p.Lat)}
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, &apperror.CollaboratorError{Op: op, Err: fmt.Errorf("bad longitude %q", p.Lon)}
	}
	return &models.Location{Latitude: lat, Longitude: lng, Address: p.DisplayName}, nil
}

// collaboratorError keeps caller cancellation visible and wraps everything else
func collaboratorError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &apperror.CollaboratorError{Op: op, Err: err}
}
