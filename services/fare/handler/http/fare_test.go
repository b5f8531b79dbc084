package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/fare/mocks"
)

func TestNewFareHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFareUC := mocks.NewMockFareUC(ctrl)
	handler := NewFareHandler(mockFareUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockFareUC, handler.fareUC)
}

func postQuote(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/fare/quote", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestFareHandler_Quote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFareUC := mocks.NewMockFareUC(ctrl)
	handler := NewFareHandler(mockFareUC)

	expectedReq := models.FareRequest{
		From:      models.PlaceFromText("Mumbai Airport"),
		To:        models.PlaceFromText("Pune Station"),
		VehicleID: "v-1",
	}
	mockFareUC.EXPECT().
		Quote(gomock.Any(), expectedReq).
		Return(&models.FareQuote{DistanceKm: 250, BillableDistance: 300, Fare: 3600, RideType: models.RideTypeAirport}, nil).
		Times(1)

	c, rec := postQuote(`{"from":{"query":"Mumbai Airport"},"to":{"query":"Pune Station"},"vehicle_id":"v-1"}`)
	err := handler.Quote(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool             `json:"success"`
		Data    models.FareQuote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3600), resp.Data.Fare)
	assert.Equal(t, 300.0, resp.Data.BillableDistance)
}

func TestFareHandler_Quote_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewFareHandler(mocks.NewMockFareUC(ctrl))

	c, rec := postQuote(`not json`)
	err := handler.Quote(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFareHandler_Quote_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: apperror.NewValidationError("to", "Pickup and drop locations cannot be the same"), status: http.StatusBadRequest},
		{name: "collaborator", err: &apperror.CollaboratorError{Op: "route", Err: errors.New("NoRoute")}, status: http.StatusUnprocessableEntity},
		{name: "network", err: apperror.ErrNetwork, status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFareUC := mocks.NewMockFareUC(ctrl)
			handler := NewFareHandler(mockFareUC)
			mockFareUC.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := postQuote(`{"from":{"query":"A"},"to":{"query":"B"},"rate":10}`)
			assert.NoError(t, handler.Quote(c))
			assert.Equal(t, tt.status, rec.Code)

			var resp utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, apperror.StatusCode(tt.err), resp.Code)
		})
	}
}

func TestFareHandler_Reverse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFareUC := mocks.NewMockFareUC(ctrl)
	handler := NewFareHandler(mockFareUC)

	mockFareUC.EXPECT().
		ReverseGeocode(gomock.Any(), 19.0896, 72.8673).
		Return(&models.Location{Latitude: 19.0896, Longitude: 72.8673, Address: "Mumbai Airport"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/geo/reverse?lat=19.0896&lng=72.8673", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, handler.Reverse(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mumbai Airport")
}

func TestFareHandler_Reverse_BadCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewFareHandler(mocks.NewMockFareUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/geo/reverse?lat=north&lng=72.8", nil)
	rec := httptest.NewRecorder()

	assert.NoError(t, handler.Reverse(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
