package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/models"
)

type recordingPublisher struct {
	topic   string
	message interface{}
	err     error
}

func (p *recordingPublisher) Publish(topic string, message interface{}) error {
	p.topic = topic
	p.message = message
	return p.err
}

func TestJournalGW_PublishAction(t *testing.T) {
	pub := &recordingPublisher{}
	gw := NewJournalGW(pub)

	entry := models.ActionLog{ID: uuid.New(), BookingID: "bk-1", Action: "START"}
	assert.NoError(t, gw.PublishAction(context.Background(), entry))
	assert.Equal(t, constants.TopicBookingActions, pub.topic)
	assert.Equal(t, entry, pub.message)
}

func TestJournalGW_PublishAction_Error(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("nsqd gone")}
	err := NewJournalGW(pub).PublishAction(context.Background(), models.ActionLog{})
	assert.EqualError(t, err, "nsqd gone")
}

func TestJournalGW_PublishAction_CancelledContext(t *testing.T) {
	pub := &recordingPublisher{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, NewJournalGW(pub).PublishAction(ctx, models.ActionLog{}), context.Canceled)
	assert.Empty(t, pub.topic)
}
