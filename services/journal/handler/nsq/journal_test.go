package nsq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/journal/mocks"
)

func TestJournalHandler_HandleBookingAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJournalUC := mocks.NewMockJournalUC(ctrl)
	handler := NewJournalHandler(mockJournalUC)

	entry := models.ActionLog{ID: uuid.New(), Kind: models.BookingKindB2B, BookingID: "b2b-7", Action: "ASSIGN", Success: true}
	body, _ := json.Marshal(entry)

	mockJournalUC.EXPECT().Persist(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.ActionLog) error {
			assert.Equal(t, entry.ID, got.ID)
			assert.Equal(t, "b2b-7", got.BookingID)
			return nil
		})

	assert.NoError(t, handler.HandleBookingAction(body))
}

func TestJournalHandler_PersistErrorRequeues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJournalUC := mocks.NewMockJournalUC(ctrl)
	handler := NewJournalHandler(mockJournalUC)

	mockJournalUC.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	body, _ := json.Marshal(models.ActionLog{ID: uuid.New(), BookingID: "bk-1"})
	assert.Error(t, handler.HandleBookingAction(body))
}

func TestJournalHandler_MalformedBodyIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewJournalHandler(mocks.NewMockJournalUC(ctrl))
	assert.NoError(t, handler.HandleBookingAction([]byte("not json")))
}
