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
	"github.com/urbancabz/console/services/bookings/mocks"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("bk-1")
	return c, rec
}

func TestBookingHandler_GetBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockBookingUC)

	mockBookingUC.EXPECT().GetBooking(gomock.Any(), "bk-1").Return(&models.BookingDetail{
		Booking:        &models.Booking{ID: "bk-1", Status: models.BookingStatusPaid},
		Due:            600,
		AllowedActions: []models.ActionOption{{Action: "ASSIGN", Label: "Assign & Dispatch"}},
	}, nil)

	c, rec := newContext(http.MethodGet, "/api/admin/bookings/bk-1", "")
	assert.NoError(t, handler.GetBooking(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"due":600`)
	assert.Contains(t, rec.Body.String(), `"action":"ASSIGN"`)
}

func TestBookingHandler_CompleteTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockBookingUC)

	mockBookingUC.EXPECT().CompleteTrip(gomock.Any(), "bk-1", models.CompleteRequest{ActualKm: 312, TollCharges: 150}).
		Return(&models.ActionResult{
			Success: true,
			Message: "Trip completed! Final: ₹4094",
			Data:    &models.CompletionResult{BookingID: "bk-1", NewTotal: 4094},
		}, nil)

	c, rec := newContext(http.MethodPost, "/api/admin/bookings/bk-1/complete", `{"actual_km":312,"toll_charges":150}`)
	assert.NoError(t, handler.CompleteTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Trip completed! Final: ₹4094")
	assert.Contains(t, rec.Body.String(), `"new_total":4094`)
}

func TestBookingHandler_CancelBooking_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockBookingUC)

	mockBookingUC.EXPECT().CancelBooking(gomock.Any(), "bk-1", models.CancelRequest{Reason: " "}).
		Return(nil, apperror.NewValidationError("reason", "Please provide a reason for cancellation"))

	c, rec := newContext(http.MethodPost, "/api/admin/bookings/bk-1/cancel", `{"reason":" "}`)
	assert.NoError(t, handler.CancelBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please provide a reason for cancellation")
}

func TestBookingHandler_StartTrip_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockBookingUC)

	mockBookingUC.EXPECT().StartTrip(gomock.Any(), "bk-1").Return(nil, apperror.ErrActionInFlight)

	c, rec := newContext(http.MethodPost, "/api/admin/bookings/bk-1/start", "")
	assert.NoError(t, handler.StartTrip(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookingHandler_AssignTaxi_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewBookingHandler(mocks.NewMockBookingUC(ctrl))

	c, rec := newContext(http.MethodPost, "/api/admin/bookings/bk-1/assign-taxi", `{"driver_name":42}`)
	assert.NoError(t, handler.AssignTaxi(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandler_Invoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockBookingUC)

	mockBookingUC.EXPECT().Invoice(gomock.Any(), "bk-1").Return(&models.Document{
		Filename: "INVOICE_UC-BK1.pdf", ContentType: models.ContentTypePDF, Content: []byte("%PDF-1.3"),
	}, nil)

	c, rec := newContext(http.MethodGet, "/api/admin/bookings/bk-1/invoice.pdf", "")
	assert.NoError(t, handler.Invoice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ContentTypePDF, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "INVOICE_UC-BK1.pdf")
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockBookingUC)

	mockBookingUC.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		Return(&models.Booking{ID: "bk-new", Status: models.BookingStatusPendingPayment}, nil)

	c, rec := newContext(http.MethodPost, "/api/admin/bookings",
		`{"customer_name":"Anita","customer_phone":"9876543210","from":{"query":"Andheri"},"to":{"query":"Pune"},"vehicle_id":"v-1"}`)
	assert.NoError(t, handler.CreateBooking(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "bk-new")
}
