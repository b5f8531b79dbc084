package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/constants"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/documents"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/dashboard"
	"golang.org/x/sync/errgroup"
)

// dashboardUC implements the dashboard.DashboardUC interface
type dashboardUC struct {
	instanceID   string
	interval     time.Duration
	repo         dashboard.CollectionRepo
	collectionGW dashboard.CollectionGW
	notifier     dashboard.NotifierGW
	broadcaster  dashboard.Broadcaster
	clock        models.Clock

	// adminSession is the last admin session seen on a request. Background
	// reloads act with its tokens since they have no client of their own.
	mu           sync.Mutex
	adminSession string
}

// NewDashboardUC creates the dashboard use case. notifier and broadcaster may be nil
// when NATS or the browser stream are not in use.
func NewDashboardUC(
	cfg models.DashboardConfig,
	instanceID string,
	repo dashboard.CollectionRepo,
	collectionGW dashboard.CollectionGW,
	notifier dashboard.NotifierGW,
	broadcaster dashboard.Broadcaster,
	clock models.Clock,
) dashboard.DashboardUC {
	if clock == nil {
		clock = models.SystemClock{}
	}
	return &dashboardUC{
		instanceID:   instanceID,
		interval:     cfg.ResyncInterval,
		repo:         repo,
		collectionGW: collectionGW,
		notifier:     notifier,
		broadcaster:  broadcaster,
		clock:        clock,
	}
}

func knownCollection(collection string) error {
	if _, ok := decoders[collection]; !ok {
		return apperror.NewValidationError("collection", fmt.Sprintf("Unknown collection %q", collection))
	}
	return nil
}

// remember keeps the admin session of a request for background reloads
func (uc *dashboardUC) remember(ctx context.Context) {
	sessionID := appcontext.GetSessionID(ctx)
	if sessionID == "" || appcontext.GetUserType(ctx) != models.UserTypeAdmin {
		return
	}
	uc.mu.Lock()
	uc.adminSession = sessionID
	uc.mu.Unlock()
}

// forget drops sessionID once its tokens stop working
func (uc *dashboardUC) forget(sessionID string) {
	uc.mu.Lock()
	if uc.adminSession == sessionID {
		uc.adminSession = ""
	}
	uc.mu.Unlock()
}

// background gives ctx a session to act with, keeping one it already carries.
// It reports false when no admin has been seen yet.
func (uc *dashboardUC) background(ctx context.Context) (context.Context, bool) {
	if appcontext.GetSessionID(ctx) != "" {
		return ctx, true
	}
	uc.mu.Lock()
	sessionID := uc.adminSession
	uc.mu.Unlock()
	if sessionID == "" {
		return ctx, false
	}
	return appcontext.WithUserType(appcontext.WithSessionID(ctx, sessionID), models.UserTypeAdmin), true
}

// List serves a filtered view of the in-memory collection, loading it on first use
func (uc *dashboardUC) List(ctx context.Context, collection string, filter models.CollectionFilter) (*models.CollectionView, error) {
	uc.remember(ctx)
	snap, err := uc.snapshot(ctx, collection, filter)
	if err != nil {
		return nil, err
	}

	matched := applyFilter(snap.Items, filter)
	values := make([]interface{}, 0, len(matched))
	for _, item := range matched {
		values = append(values, item.Value)
	}
	syncedAt := snap.SyncedAt
	return &models.CollectionView{
		Collection: collection,
		Items:      values,
		Total:      len(snap.Items),
		Matched:    len(matched),
		Generation: snap.Generation,
		SyncedAt:   &syncedAt,
	}, nil
}

func (uc *dashboardUC) snapshot(ctx context.Context, collection string, filter models.CollectionFilter) (*models.CollectionSnapshot, error) {
	if err := knownCollection(collection); err != nil {
		return nil, err
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	if snap, ok := uc.repo.Snapshot(collection); ok {
		return snap, nil
	}
	if err := uc.load(ctx, collection); err != nil {
		return nil, err
	}
	snap, ok := uc.repo.Snapshot(collection)
	if !ok {
		return nil, apperror.ErrNetwork
	}
	return snap, nil
}

// load fetches one collection and applies it unless the caller went away or a
// newer fetch already landed
func (uc *dashboardUC) load(ctx context.Context, collection string) error {
	generation := uc.repo.Begin(collection)

	raw, err := uc.collectionGW.FetchCollection(ctx, collection)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		logger.Debug("Discarding collection response after cancellation",
			logger.String("collection", collection))
		return err
	}

	items, err := decode(collection, raw)
	if err != nil {
		logger.Warn("Undecodable collection response",
			logger.String("collection", collection),
			logger.Err(err))
		return apperror.ErrNetwork
	}

	if !uc.repo.Apply(collection, generation, items, uc.clock.Now()) {
		logger.Debug("Discarding stale collection response",
			logger.String("collection", collection),
			logger.Int64("generation", int64(generation)))
	}
	return nil
}

// Resync reloads every collection in parallel. One failing collection keeps its
// previous copy and does not stop the others.
func (uc *dashboardUC) Resync(ctx context.Context) (*models.SyncReport, error) {
	uc.remember(ctx)
	var (
		mu     sync.Mutex
		g      errgroup.Group
		report = &models.SyncReport{Refreshed: make([]string, 0, len(Collections))}
		errs   = make(map[string]error)
	)

	for _, collection := range Collections {
		collection := collection
		g.Go(func() error {
			err := uc.load(ctx, collection)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[collection] = err
				return nil
			}
			report.Refreshed = append(report.Refreshed, collection)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Strings(report.Refreshed)
	if len(errs) > 0 {
		report.Failed = make(map[string]string, len(errs))
		for collection, err := range errs {
			report.Failed[collection] = apperror.Message(err)
		}
	}
	if len(report.Refreshed) == 0 && len(errs) > 0 {
		return report, errs[Collections[0]]
	}
	return report, nil
}

// Refresh reloads one collection after a mutation, tells connected browsers, and
// asks the other console instances to do the same
func (uc *dashboardUC) Refresh(ctx context.Context, collection, bookingID string) error {
	if err := knownCollection(collection); err != nil {
		return err
	}
	uc.remember(ctx)
	if err := uc.load(ctx, collection); err != nil {
		return err
	}
	uc.broadcast(collection, bookingID)

	if uc.notifier == nil {
		return nil
	}
	notice := models.RefreshNotice{
		Origin:     uc.instanceID,
		Collection: collection,
		BookingID:  bookingID,
		SentAt:     uc.clock.Now(),
	}
	if err := uc.notifier.PublishRefresh(ctx, notice); err != nil {
		logger.Warn("Failed to publish refresh notice",
			logger.String("collection", collection),
			logger.Err(err))
	}
	return nil
}

// HandleNotice applies a refresh announced by another console instance. Until an
// admin has used this instance there is nobody to fetch as, so the notice is
// skipped and the first request loads fresh data anyway.
func (uc *dashboardUC) HandleNotice(ctx context.Context, notice models.RefreshNotice) error {
	if notice.Origin == uc.instanceID {
		return nil
	}
	if err := knownCollection(notice.Collection); err != nil {
		return err
	}
	ctx, ok := uc.background(ctx)
	if !ok {
		logger.Debug("Skipping refresh notice without an admin session",
			logger.String("collection", notice.Collection))
		return nil
	}
	if err := uc.load(ctx, notice.Collection); err != nil {
		if errors.Is(err, apperror.ErrUnauthenticated) {
			uc.forget(appcontext.GetSessionID(ctx))
		}
		return err
	}
	uc.broadcast(notice.Collection, notice.BookingID)
	return nil
}

func (uc *dashboardUC) broadcast(collection, bookingID string) {
	if uc.broadcaster == nil {
		return
	}
	payload := map[string]string{"collection": collection}
	if bookingID != "" {
		payload["booking_id"] = bookingID
	}
	if err := uc.broadcaster.Broadcast(constants.EventCollectionChanged, payload); err != nil {
		logger.Warn("Failed to broadcast collection change",
			logger.String("collection", collection),
			logger.Err(err))
	}
}

// Export renders the filtered bookings list as a workbook
func (uc *dashboardUC) Export(ctx context.Context, collection string, filter models.CollectionFilter) (*models.Document, error) {
	if collection != constants.CollectionBookings && collection != constants.CollectionB2BBookings {
		return nil, apperror.NewValidationError("collection", "Only bookings can be exported")
	}
	uc.remember(ctx)
	snap, err := uc.snapshot(ctx, collection, filter)
	if err != nil {
		return nil, err
	}
	matched := applyFilter(snap.Items, filter)

	var content []byte
	switch collection {
	case constants.CollectionBookings:
		rows := make([]models.Booking, 0, len(matched))
		for _, item := range matched {
			rows = append(rows, item.Value.(models.Booking))
		}
		content, err = documents.BookingsWorkbook(rows)
	default:
		rows := make([]models.B2BBooking, 0, len(matched))
		for _, item := range matched {
			rows = append(rows, item.Value.(models.B2BBooking))
		}
		content, err = documents.B2BBookingsWorkbook(rows)
	}
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", collection, err)
	}

	return &models.Document{
		Filename:    fmt.Sprintf("%s_%s.xlsx", collection, uc.clock.Now().Format("20060102")),
		ContentType: models.ContentTypeXLSX,
		Content:     content,
	}, nil
}

// Run resyncs every interval until ctx is done. A zero interval disables it.
func (uc *dashboardUC) Run(ctx context.Context) {
	if uc.interval <= 0 {
		logger.Info("Periodic dashboard resync disabled")
		return
	}

	ticker := time.NewTicker(uc.interval)
	defer ticker.Stop()

	logger.Info("Periodic dashboard resync started", logger.Duration("interval", uc.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Periodic dashboard resync stopped")
			return
		case <-ticker.C:
			sessionCtx, ok := uc.background(ctx)
			if !ok {
				logger.Debug("Skipping dashboard resync without an admin session")
				continue
			}
			report, err := uc.Resync(sessionCtx)
			switch {
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return
			case errors.Is(err, apperror.ErrUnauthenticated):
				logger.Info("Admin session behind the dashboard resync ended")
				uc.forget(appcontext.GetSessionID(sessionCtx))
			case err != nil:
				logger.Warn("Dashboard resync failed", logger.Err(err))
			case len(report.Failed) > 0:
				logger.Warn("Dashboard resync incomplete", logger.Any("failed", report.Failed))
			}
		}
	}
}
