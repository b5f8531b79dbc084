package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/journal/mocks"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestRecord_PublishesStampedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJournalRepo(ctrl)
	gw := mocks.NewMockJournalGW(ctrl)
	uc := NewJournalUC(repo, gw, fixedClock{now: testNow})

	gw.EXPECT().PublishAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.ActionLog) error {
			assert.NotEqual(t, uuid.Nil, entry.ID)
			assert.Equal(t, testNow, entry.CreatedAt)
			assert.Equal(t, "bk-1", entry.BookingID)
			return nil
		})

	err := uc.Record(context.Background(), models.ActionLog{
		Kind: models.BookingKindB2C, BookingID: "bk-1", Action: "START", Success: true,
	})
	assert.NoError(t, err)
}

func TestRecord_FallsBackToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJournalRepo(ctrl)
	gw := mocks.NewMockJournalGW(ctrl)
	uc := NewJournalUC(repo, gw, fixedClock{now: testNow})

	gw.EXPECT().PublishAction(gomock.Any(), gomock.Any()).Return(errors.New("nsqd gone"))
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, uc.Record(context.Background(), models.ActionLog{BookingID: "bk-1"}))
}

func TestRecord_WritesDirectlyWithoutQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJournalRepo(ctrl)
	uc := NewJournalUC(repo, nil, fixedClock{now: testNow})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.ActionLog) error {
			return ctx.Err()
		})

	assert.NoError(t, uc.Record(ctx, models.ActionLog{BookingID: "bk-1"}))
}

func TestRecord_NoSinks(t *testing.T) {
	uc := NewJournalUC(nil, nil, nil)
	assert.NoError(t, uc.Record(context.Background(), models.ActionLog{BookingID: "bk-1"}))
}

func TestRecord_TruncatesLongMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJournalRepo(ctrl)
	uc := NewJournalUC(repo, nil, fixedClock{now: testNow})

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.ActionLog) error {
			assert.Len(t, []rune(entry.Message), MaxMessageLength)
			assert.True(t, strings.HasSuffix(entry.Message, "..."))
			return nil
		})

	err := uc.Record(context.Background(), models.ActionLog{
		BookingID: "bk-1", Action: "CANCEL", Message: strings.Repeat("ग", MaxMessageLength+20),
	})
	assert.NoError(t, err)
}

func TestPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJournalRepo(ctrl)
	uc := NewJournalUC(repo, nil, nil)

	entry := models.ActionLog{ID: uuid.New(), BookingID: "bk-1"}
	repo.EXPECT().Insert(gomock.Any(), entry).Return(nil)
	assert.NoError(t, uc.Persist(context.Background(), entry))

	err := uc.Persist(context.Background(), models.ActionLog{BookingID: "bk-1"})
	assert.True(t, apperror.IsValidation(err))
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockJournalRepo(ctrl)
	uc := NewJournalUC(repo, nil, nil)

	filter := models.JournalFilter{BookingID: "bk-1", Limit: 20}
	repo.EXPECT().List(gomock.Any(), filter).Return([]models.ActionLog{{BookingID: "bk-1"}}, nil)

	entries, err := uc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = uc.List(context.Background(), models.JournalFilter{Limit: -1})
	assert.True(t, apperror.IsValidation(err))
}

func TestList_WithoutDatabase(t *testing.T) {
	entries, err := NewJournalUC(nil, nil, nil).List(context.Background(), models.JournalFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
