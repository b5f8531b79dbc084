package gateway

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/journal"
)

// Publisher is the part of the NSQ producer the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

type journalGW struct {
	producer Publisher
}

// NewJournalGW creates the NSQ backed journal gateway
func NewJournalGW(producer Publisher) journal.JournalGW {
	return &journalGW{producer: producer}
}

// PublishAction queues the entry on the booking actions topic
func (g *journalGW) PublishAction(ctx context.Context, entry models.ActionLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.producer.Publish(constants.TopicBookingActions, entry)
}
