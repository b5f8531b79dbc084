package nsq

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	nsqpkg "github.com/urbancabz/console/internal/pkg/nsq"
	"github.com/urbancabz/console/services/journal"
)

// JournalHandler persists journal entries delivered over NSQ
type JournalHandler struct {
	journalUC journal.JournalUC
}

// NewJournalHandler creates a new NSQ journal handler
func NewJournalHandler(journalUC journal.JournalUC) *JournalHandler {
	return &JournalHandler{journalUC: journalUC}
}

// HandleBookingAction persists one entry. Malformed bodies are dropped.
func (h *JournalHandler) HandleBookingAction(msg []byte) error {
	var entry models.ActionLog
	if err := nsqpkg.UnmarshalMessage(msg, &entry); err != nil {
		logger.Warn("Dropping malformed action log", logger.Err(err))
		return nil
	}
	return h.journalUC.Persist(context.Background(), entry)
}

// Subscribe starts consuming the booking actions topic
func (h *JournalHandler) Subscribe(address string) (*nsqpkg.Consumer, error) {
	return nsqpkg.NewConsumer(constants.TopicBookingActions, constants.ChannelJournalPersist, address, h.HandleBookingAction)
}
