package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbancabz/console/internal/pkg/apperror"
	httpclient "github.com/urbancabz/console/internal/pkg/http"
	"github.com/urbancabz/console/internal/pkg/models"
)

func newGW(url string) *bookingGW {
	return NewBookingGW(httpclient.NewAPIClient(models.APIConfig{BaseURL: url}, nil)).(*bookingGW)
}

func TestBookingGW_FetchBooking(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "flat data", body: `{"success":true,"data":{"id":"bk-1","status":"PAID","taxi_assign_status":"NOT_ASSIGNED","total_amount":1000}}`},
		{name: "nested booking", body: `{"success":true,"data":{"booking":{"id":"bk-1","status":"PAID","taxi_assign_status":"NOT_ASSIGNED","total_amount":1000}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/admin/bookings/bk-1", r.URL.Path)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			booking, err := newGW(server.URL).FetchBooking(context.Background(), "bk-1")

			require.NoError(t, err)
			assert.Equal(t, "bk-1", booking.ID)
			assert.Equal(t, models.BookingStatusPaid, booking.Status)
			assert.Equal(t, models.TaxiNotAssigned, booking.TaxiAssignStatus)
		})
	}
}

func TestBookingGW_FetchBooking_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer server.Close()

	_, err := newGW(server.URL).FetchBooking(context.Background(), "bk-9")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestBookingGW_AssignTaxi(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/bookings/bk-1/assign-taxi", r.URL.Path)
		var body models.Assignment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ravi Kumar", body.DriverName)
		assert.Equal(t, "MH01AB1234", body.CabNumber)
		w.Write([]byte(`{"success":true,"message":"Taxi assigned"}`))
	}))
	defer server.Close()

	err := newGW(server.URL).AssignTaxi(context.Background(), "bk-1", models.Assignment{
		DriverName: "Ravi Kumar", DriverNumber: "9876543210", CabName: "Dzire", CabNumber: "MH01AB1234",
	})
	assert.NoError(t, err)
}

func TestBookingGW_StartTrip_BusinessError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/bookings/bk-1/start", r.URL.Path)
		w.Write([]byte(`{"success":false,"message":"Driver has not reached pickup"}`))
	}))
	defer server.Close()

	err := newGW(server.URL).StartTrip(context.Background(), "bk-1")
	assert.True(t, apperror.IsBusiness(err))
	assert.Equal(t, "Driver has not reached pickup", apperror.Message(err))
}

func TestBookingGW_CompleteTrip(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    float64
		wantErr bool
	}{
		{name: "new_total", body: `{"success":true,"data":{"new_total":1450}}`, want: 1450},
		{name: "booking total", body: `{"success":true,"data":{"booking":{"id":"bk-1","total_amount":1520.5}}}`, want: 1520.5},
		{name: "flat total", body: `{"success":true,"data":{"id":"bk-1","total_amount":990}}`, want: 990},
		{name: "no total", body: `{"success":true,"data":{}}`, wantErr: true},
		{name: "no data", body: `{"success":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/admin/bookings/bk-1/complete", r.URL.Path)
				var body models.CompleteRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, 312.0, body.ActualKm)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			result, err := newGW(server.URL).CompleteTrip(context.Background(), "bk-1",
				models.CompleteRequest{ActualKm: 312, TollCharges: 150})

			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrNetwork)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bk-1", result.BookingID)
			assert.Equal(t, tt.want, result.NewTotal)
		})
	}
}

func TestBookingGW_CancelBooking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/bookings/bk-1/cancel", r.URL.Path)
		var body models.CancelRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Customer unreachable", body.Reason)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	assert.NoError(t, newGW(server.URL).CancelBooking(context.Background(), "bk-1", "Customer unreachable"))
}

func TestBookingGW_CreateBooking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/bookings", r.URL.Path)
		var body models.NewBooking
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3600.0, body.TotalAmount)
		w.Write([]byte(`{"success":true,"data":{"booking":{"id":"bk-new","status":"PENDING_PAYMENT","total_amount":3600}}}`))
	}))
	defer server.Close()

	booking, err := newGW(server.URL).CreateBooking(context.Background(), models.NewBooking{TotalAmount: 3600})
	require.NoError(t, err)
	assert.Equal(t, "bk-new", booking.ID)
	assert.Equal(t, models.BookingStatusPendingPayment, booking.Status)
}
