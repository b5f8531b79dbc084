package gateway

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/dashboard"
)

// Publisher is the part of the NATS client the notifier needs
type Publisher interface {
	PublishJSON(subject string, message interface{}) error
}

type notifierGW struct {
	publisher Publisher
}

// NewNotifierGW creates the NATS backed refresh notifier
func NewNotifierGW(publisher Publisher) dashboard.NotifierGW {
	return &notifierGW{publisher: publisher}
}

// PublishRefresh announces a changed collection to the other console instances
func (g *notifierGW) PublishRefresh(ctx context.Context, notice models.RefreshNotice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.publisher.PublishJSON(constants.SubjectRefresh, notice); err != nil {
		return err
	}
	logger.Debug("Published refresh notice",
		logger.String("collection", notice.Collection),
		logger.String("booking_id", notice.BookingID))
	return nil
}
