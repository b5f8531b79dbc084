package journal

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// JournalRepo stores journal entries
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/urbancabz/console/services/journal JournalRepo
type JournalRepo interface {
	Insert(ctx context.Context, entry models.ActionLog) error
	List(ctx context.Context, filter models.JournalFilter) ([]models.ActionLog, error)
}
