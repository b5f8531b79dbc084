package dashboard

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/urbancabz/console/services/dashboard DashboardUC
type DashboardUC interface {
	List(ctx context.Context, collection string, filter models.CollectionFilter) (*models.CollectionView, error)
	Resync(ctx context.Context) (*models.SyncReport, error)
	Refresh(ctx context.Context, collection, bookingID string) error
	HandleNotice(ctx context.Context, notice models.RefreshNotice) error
	Export(ctx context.Context, collection string, filter models.CollectionFilter) (*models.Document, error)
	Run(ctx context.Context)
}
