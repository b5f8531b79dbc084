package journal

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// JournalGW queues journal entries for asynchronous persistence
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/urbancabz/console/services/journal JournalGW
type JournalGW interface {
	PublishAction(ctx context.Context, entry models.ActionLog) error
}
