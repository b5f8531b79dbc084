package journal

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// JournalUC records and lists lifecycle actions taken from the console
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/urbancabz/console/services/journal JournalUC
type JournalUC interface {
	Record(ctx context.Context, entry models.ActionLog) error
	Persist(ctx context.Context, entry models.ActionLog) error
	List(ctx context.Context, filter models.JournalFilter) ([]models.ActionLog, error)
}
