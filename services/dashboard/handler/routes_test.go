package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/middleware"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/dashboard/mocks"
)

// actingAs stands in for the session middleware
func actingAs(userType models.UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appcontext.EchoUserTypeKey, userType)
			return next(c)
		}
	}
}

func TestRoutes_DashboardIsAdminOnly(t *testing.T) {
	tests := []struct {
		name         string
		userType     models.UserType
		expectStatus int
	}{
		{name: "admin", userType: models.UserTypeAdmin, expectStatus: http.StatusOK},
		{name: "customer", userType: models.UserTypeCustomer, expectStatus: http.StatusForbidden},
		{name: "business", userType: models.UserTypeBusiness, expectStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dashboardUC := mocks.NewMockDashboardUC(ctrl)
			if tt.expectStatus == http.StatusOK {
				dashboardUC.EXPECT().List(gomock.Any(), "bookings", gomock.Any()).
					Return(&models.CollectionView{Collection: "bookings"}, nil)
			}

			e := echo.New()
			api := e.Group("/api", actingAs(tt.userType))
			NewHandler(dashboardUC, nil).RegisterRoutes(api, middleware.RequireUserType(models.UserTypeAdmin))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/bookings", nil))
			assert.Equal(t, tt.expectStatus, rec.Code)
		})
	}
}
