package nats

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/models"
	natspkg "github.com/urbancabz/console/internal/pkg/nats"
	"github.com/urbancabz/console/services/dashboard/mocks"
)

type recordingSubscriber struct {
	subject string
	handler natspkg.MessageHandler
	err     error
}

func (s *recordingSubscriber) Subscribe(subject string, handler natspkg.MessageHandler) error {
	s.subject = subject
	s.handler = handler
	return s.err
}

func TestRefreshHandler_HandleRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboardUC := mocks.NewMockDashboardUC(ctrl)
	handler := NewRefreshHandler(mockDashboardUC)

	mockDashboardUC.EXPECT().HandleNotice(gomock.Any(), models.RefreshNotice{
		Origin: "console-b", Collection: constants.CollectionBookings, BookingID: "bk-9",
	}).Return(nil)

	err := handler.HandleRefresh([]byte(`{"origin":"console-b","collection":"bookings","booking_id":"bk-9"}`))
	assert.NoError(t, err)
}

func TestRefreshHandler_MalformedNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRefreshHandler(mocks.NewMockDashboardUC(ctrl))
	assert.Error(t, handler.HandleRefresh([]byte(`not json`)))
}

func TestRefreshHandler_InitNATSConsumers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboardUC := mocks.NewMockDashboardUC(ctrl)
	handler := NewRefreshHandler(mockDashboardUC)

	sub := &recordingSubscriber{}
	require.NoError(t, handler.InitNATSConsumers(sub))
	assert.Equal(t, constants.SubjectRefresh, sub.subject)

	mockDashboardUC.EXPECT().HandleNotice(gomock.Any(), gomock.Any()).Return(nil)
	assert.NoError(t, sub.handler([]byte(`{"origin":"console-b","collection":"fleet"}`)))

	failing := &recordingSubscriber{err: errors.New("nats: connection closed")}
	assert.ErrorContains(t, handler.InitNATSConsumers(failing), "failed to subscribe")
}
