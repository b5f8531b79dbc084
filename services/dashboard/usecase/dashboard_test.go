package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/constants"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/dashboard/mocks"
	"github.com/urbancabz/console/services/dashboard/repository"
)

const bookingsFixture = `[
	{"id":"bk-1","status":"PAID","taxi_assign_status":"NOT_ASSIGNED","pickup_location":"Kempegowda Airport","drop_location":"Koramangala",
	 "total_amount":1500,"payments":[],"customer":{"name":"Anita Rao","phone":"9876543210"},"scheduled_at":"2026-04-10T05:00:00Z"},
	{"id":"bk-2","status":"COMPLETED","taxi_assign_status":"ASSIGNED","pickup_location":"Indiranagar","drop_location":"Mysuru",
	 "total_amount":4200,"payments":[{"amount":4200,"status":"SUCCESS"}],"customer":{"name":"Rahul Menon","phone":"9123456780"},"scheduled_at":"2026-05-02T09:30:00Z"},
	{"id":"bk-3","status":"CANCELLED","taxi_assign_status":"NOT_ASSIGNED","pickup_location":"Whitefield","drop_location":"HSR Layout",
	 "total_amount":700,"payments":[],"created_at":"2026-04-20T12:00:00Z"}
]`

const instanceID = "console-a"

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uc          *dashboardUC
	repo        *repository.CollectionRepo
	gw          *mocks.MockCollectionGW
	notifier    *mocks.MockNotifierGW
	broadcaster *mocks.MockBroadcaster
}

func newFixture(ctrl *gomock.Controller, interval time.Duration) *fixture {
	f := &fixture{
		repo:        repository.NewCollectionRepository(),
		gw:          mocks.NewMockCollectionGW(ctrl),
		notifier:    mocks.NewMockNotifierGW(ctrl),
		broadcaster: mocks.NewMockBroadcaster(ctrl),
	}
	f.uc = NewDashboardUC(models.DashboardConfig{ResyncInterval: interval}, instanceID,
		f.repo, f.gw, f.notifier, f.broadcaster, fixedClock{now: testNow}).(*dashboardUC)
	return f
}

// adminRequest is the context an admin's dashboard request carries
func adminRequest(sessionID string) context.Context {
	ctx := appcontext.WithSessionID(context.Background(), sessionID)
	return appcontext.WithUserType(ctx, models.UserTypeAdmin)
}

func ids(t *testing.T, view *models.CollectionView) []string {
	t.Helper()
	out := make([]string, 0, len(view.Items))
	for _, item := range view.Items {
		booking, ok := item.(models.Booking)
		require.True(t, ok)
		out = append(out, booking.ID)
	}
	return out
}

func TestList_LoadsOnceThenFiltersInMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	f.gw.EXPECT().FetchCollection(gomock.Any(), constants.CollectionBookings).
		Return(json.RawMessage(bookingsFixture), nil).Times(1)

	tests := []struct {
		name     string
		filter   models.CollectionFilter
		expected []string
	}{
		{name: "no filter", filter: models.CollectionFilter{}, expected: []string{"bk-1", "bk-2", "bk-3"}},
		{name: "search customer name", filter: models.CollectionFilter{Search: "  ANITA "}, expected: []string{"bk-1"}},
		{name: "search location", filter: models.CollectionFilter{Search: "mysuru"}, expected: []string{"bk-2"}},
		{name: "status tab", filter: models.CollectionFilter{Status: "completed"}, expected: []string{"bk-2"}},
		{name: "all tab", filter: models.CollectionFilter{Status: "ALL"}, expected: []string{"bk-1", "bk-2", "bk-3"}},
		{name: "month falls back to created_at", filter: models.CollectionFilter{Month: "2026-04"}, expected: []string{"bk-1", "bk-3"}},
		{name: "combined", filter: models.CollectionFilter{Month: "2026-04", Status: "CANCELLED"}, expected: []string{"bk-3"}},
		{name: "nothing matches", filter: models.CollectionFilter{Search: "chennai"}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := f.uc.List(context.Background(), constants.CollectionBookings, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids(t, view))
			assert.Equal(t, 3, view.Total)
			assert.Equal(t, len(tt.expected), view.Matched)
			assert.Equal(t, testNow, *view.SyncedAt)
		})
	}
}

func TestList_RejectsBadInputBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	_, err := f.uc.List(context.Background(), "invoices", models.CollectionFilter{})
	assert.True(t, apperror.IsValidation(err))

	_, err = f.uc.List(context.Background(), constants.CollectionBookings, models.CollectionFilter{Month: "April"})
	assert.True(t, apperror.IsValidation(err))
}

func TestList_OtherCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	f.gw.EXPECT().FetchCollection(gomock.Any(), constants.CollectionFleet).Return(json.RawMessage(`[
		{"id":"v-1","name":"Dzire","category":"SEDAN","seats":4,"base_price_per_km":12,"is_active":true},
		{"id":"v-2","name":"Innova Crysta","category":"SUV","seats":7,"base_price_per_km":18,"is_active":false}
	]`), nil)

	view, err := f.uc.List(context.Background(), constants.CollectionFleet, models.CollectionFilter{Status: "inactive"})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Innova Crysta", view.Items[0].(models.Vehicle).Name)
}

func TestList_UndecodableResponseIsNetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	f.gw.EXPECT().FetchCollection(gomock.Any(), constants.CollectionDrivers).Return(json.RawMessage(`[{"id":42}]`), nil)

	_, err := f.uc.List(context.Background(), constants.CollectionDrivers, models.CollectionFilter{})
	assert.ErrorIs(t, err, apperror.ErrNetwork)
	_, ok := f.repo.Snapshot(constants.CollectionDrivers)
	assert.False(t, ok)
}

func TestRefresh_ResponseAfterCancellationIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	ctx, cancel := context.WithCancel(context.Background())
	f.gw.EXPECT().FetchCollection(gomock.Any(), constants.CollectionBookings).
		DoAndReturn(func(_ context.Context, _ string) (json.RawMessage, error) {
			cancel()
			return json.RawMessage(bookingsFixture), nil
		})

	err := f.uc.Refresh(ctx, constants.CollectionBookings, "bk-1")

	assert.ErrorIs(t, err, context.Canceled)
	_, ok := f.repo.Snapshot(constants.CollectionBookings)
	assert.False(t, ok)
}

func TestLoad_OlderResponseLosesToNewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	started := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	f.gw.EXPECT().FetchCollection(gomock.Any(), constants.CollectionDrivers).
		DoAndReturn(func(_ context.Context, _ string) (json.RawMessage, error) {
			calls++
			if calls == 1 {
				close(started)
				<-release
				return json.RawMessage(`[{"id":"d-old","name":"Old Roster"}]`), nil
			}
			return json.RawMessage(`[{"id":"d-new","name":"New Roster"}]`), nil
		}).Times(2)

	done := make(chan error, 1)
	go func() {
		done <- f.uc.load(context.Background(), constants.CollectionDrivers)
	}()
	<-started

	require.NoError(t, f.uc.load(context.Background(), constants.CollectionDrivers))
	close(release)
	require.NoError(t, <-done)

	snap, ok := f.repo.Snapshot(constants.CollectionDrivers)
	require.True(t, ok)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "d-new", snap.Items[0].Value.(models.Driver).ID)
	assert.Equal(t, uint64(2), snap.Generation)
}

func TestResync_PartialFailureKeepsPreviousCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	f.repo.Apply(constants.CollectionUsers, f.repo.Begin(constants.CollectionUsers),
		[]models.CollectionItem{{Value: models.User{ID: "u-1"}}}, testNow.Add(-time.Hour))

	for _, collection := range Collections {
		if collection == constants.CollectionUsers {
			f.gw.EXPECT().FetchCollection(gomock.Any(), collection).Return(nil, apperror.ErrNetwork)
			continue
		}
		f.gw.EXPECT().FetchCollection(gomock.Any(), collection).Return(json.RawMessage(`[]`), nil)
	}

	report, err := f.uc.Resync(context.Background())

	require.NoError(t, err)
	assert.Len(t, report.Refreshed, len(Collections)-1)
	assert.NotContains(t, report.Refreshed, constants.CollectionUsers)
	assert.Equal(t, apperror.NetworkMessage, report.Failed[constants.CollectionUsers])

	users, ok := f.repo.Snapshot(constants.CollectionUsers)
	require.True(t, ok)
	assert.Len(t, users.Items, 1)
}

func TestResync_AllFailing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	f.gw.EXPECT().FetchCollection(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrNetwork).Times(len(Collections))

	report, err := f.uc.Resync(context.Background())
	assert.ErrorIs(t, err, apperror.ErrNetwork)
	assert.Empty(t, report.Refreshed)
	assert.Len(t, report.Failed, len(Collections))
}

func TestRefresh_BroadcastsAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	f.gw.EXPECT().FetchCollection(gomock.Any(), constants.CollectionB2BBookings).Return(json.RawMessage(`[]`), nil)
	f.broadcaster.EXPECT().Broadcast(constants.EventCollectionChanged,
		map[string]string{"collection": constants.CollectionB2BBookings, "booking_id": "b2b-7"}).Return(nil)
	f.notifier.EXPECT().PublishRefresh(gomock.Any(), models.RefreshNotice{
		Origin:     instanceID,
		Collection: constants.CollectionB2BBookings,
		BookingID:  "b2b-7",
		SentAt:     testNow,
	}).Return(errors.New("nats: connection closed"))

	assert.NoError(t, f.uc.Refresh(context.Background(), constants.CollectionB2BBookings, "b2b-7"))
}

func TestRefresh_FetchFailureSkipsFanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	f.gw.EXPECT().FetchCollection(gomock.Any(), constants.CollectionBookings).Return(nil, apperror.ErrNetwork)

	assert.ErrorIs(t, f.uc.Refresh(context.Background(), constants.CollectionBookings, "bk-1"), apperror.ErrNetwork)
}

func TestRefresh_WithoutFanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockCollectionGW(ctrl)
	uc := NewDashboardUC(models.DashboardConfig{}, instanceID, repository.NewCollectionRepository(), gw, nil, nil, nil)

	gw.EXPECT().FetchCollection(gomock.Any(), constants.CollectionFleet).Return(json.RawMessage(`[]`), nil)
	assert.NoError(t, uc.Refresh(context.Background(), constants.CollectionFleet, ""))
}

func TestHandleNotice(t *testing.T) {
	t.Run("own notice is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(ctrl, 0)

		err := f.uc.HandleNotice(context.Background(), models.RefreshNotice{Origin: instanceID, Collection: constants.CollectionBookings})
		assert.NoError(t, err)
	})

	t.Run("peer notice refreshes without republishing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(ctrl, 0)
		f.uc.remember(adminRequest("sess-admin"))

		f.gw.EXPECT().FetchCollection(gomock.Any(), constants.CollectionBookings).
			DoAndReturn(func(ctx context.Context, _ string) (json.RawMessage, error) {
				assert.Equal(t, "sess-admin", appcontext.GetSessionID(ctx))
				assert.Equal(t, models.UserTypeAdmin, appcontext.GetUserType(ctx))
				return json.RawMessage(bookingsFixture), nil
			})
		f.broadcaster.EXPECT().Broadcast(constants.EventCollectionChanged,
			map[string]string{"collection": constants.CollectionBookings, "booking_id": "bk-2"}).Return(nil)

		err := f.uc.HandleNotice(context.Background(), models.RefreshNotice{
			Origin: "console-b", Collection: constants.CollectionBookings, BookingID: "bk-2",
		})
		require.NoError(t, err)

		snap, ok := f.repo.Snapshot(constants.CollectionBookings)
		require.True(t, ok)
		assert.Len(t, snap.Items, 3)
	})

	t.Run("skipped before any admin session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(ctrl, 0)

		err := f.uc.HandleNotice(context.Background(), models.RefreshNotice{Origin: "console-b", Collection: constants.CollectionBookings})
		assert.NoError(t, err)
		_, ok := f.repo.Snapshot(constants.CollectionBookings)
		assert.False(t, ok)
	})

	t.Run("ended admin session is forgotten", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(ctrl, 0)
		f.uc.remember(adminRequest("sess-admin"))

		f.gw.EXPECT().FetchCollection(gomock.Any(), constants.CollectionBookings).Return(nil, apperror.ErrUnauthenticated)

		notice := models.RefreshNotice{Origin: "console-b", Collection: constants.CollectionBookings}
		assert.ErrorIs(t, f.uc.HandleNotice(context.Background(), notice), apperror.ErrUnauthenticated)
		assert.NoError(t, f.uc.HandleNotice(context.Background(), notice))
	})

	t.Run("unknown collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(ctrl, 0)

		err := f.uc.HandleNotice(context.Background(), models.RefreshNotice{Origin: "console-b", Collection: "invoices"})
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	f.gw.EXPECT().FetchCollection(gomock.Any(), constants.CollectionBookings).Return(json.RawMessage(bookingsFixture), nil)

	doc, err := f.uc.Export(context.Background(), constants.CollectionBookings, models.CollectionFilter{Month: "2026-04"})

	require.NoError(t, err)
	assert.Equal(t, "bookings_20261018.xlsx", doc.Filename)
	assert.Equal(t, models.ContentTypeXLSX, doc.ContentType)
	assert.Equal(t, "PK", string(doc.Content[:2]))
}

func TestExport_OnlyBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	_, err := f.uc.Export(context.Background(), constants.CollectionDrivers, models.CollectionFilter{})
	assert.True(t, apperror.IsValidation(err))
}

func TestRun_DisabledReturnsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	done := make(chan struct{})
	go func() {
		f.uc.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return with a zero interval")
	}
}

func TestRun_StopsWhenContextEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 10*time.Millisecond)
	f.uc.remember(adminRequest("sess-admin"))

	f.gw.EXPECT().FetchCollection(gomock.Any(), gomock.Any()).Return(json.RawMessage(`[]`), nil).MinTimes(len(Collections))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.uc.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, ok := f.repo.Snapshot(constants.CollectionUsers)
		return ok
	}, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}

func TestRun_WaitsForAnAdminSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.uc.Run(ctx)
		close(done)
	}()

	// No FetchCollection expectation: any call before an admin shows up fails the test
	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done
}

func TestRemember_OnlyAdminSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl, 0)

	customer := appcontext.WithUserType(appcontext.WithSessionID(context.Background(), "sess-customer"), models.UserTypeCustomer)
	f.uc.remember(customer)
	_, ok := f.uc.background(context.Background())
	assert.False(t, ok)

	f.uc.remember(adminRequest("sess-admin"))
	ctx, ok := f.uc.background(context.Background())
	require.True(t, ok)
	assert.Equal(t, "sess-admin", appcontext.GetSessionID(ctx))

	f.uc.forget("sess-other")
	_, ok = f.uc.background(context.Background())
	assert.True(t, ok)
	f.uc.forget("sess-admin")
	_, ok = f.uc.background(context.Background())
	assert.False(t, ok)
}
