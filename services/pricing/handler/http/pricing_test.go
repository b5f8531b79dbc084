package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/pricing/mocks"
)

func TestPricingHandler_GetSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingUC := mocks.NewMockPricingUC(ctrl)
	handler := NewPricingHandler(mockPricingUC)

	mockPricingUC.EXPECT().GetSettings(gomock.Any()).
		Return(&models.PricingSettings{MinKmThreshold: 120, MinKmAirportApply: true}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/pricing", nil), rec)

	assert.NoError(t, handler.GetSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"min_km_threshold":120`)
}

func TestPricingHandler_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingUC := mocks.NewMockPricingUC(ctrl)
	handler := NewPricingHandler(mockPricingUC)

	expected := models.PricingSettings{MinKmThreshold: 200, ServiceRoundtripEnabled: true}
	mockPricingUC.EXPECT().UpdateSettings(gomock.Any(), expected).Return(&expected, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/pricing",
		strings.NewReader(`{"min_km_threshold":200,"service_roundtrip_enabled":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	assert.NoError(t, handler.UpdateSettings(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pricing settings saved")
}

func TestPricingHandler_UpdateSettings_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPricingHandler(mocks.NewMockPricingUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/pricing", strings.NewReader(`{"min_km_threshold":"lots"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	assert.NoError(t, handler.UpdateSettings(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPricingHandler_EnabledServices_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingUC := mocks.NewMockPricingUC(ctrl)
	handler := NewPricingHandler(mockPricingUC)
	mockPricingUC.EXPECT().EnabledServices(gomock.Any()).Return(nil, apperror.ErrNetwork)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/pricing/services", nil), rec)

	assert.NoError(t, handler.EnabledServices(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
