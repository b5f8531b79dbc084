package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/journal"
)

// MaxMessageLength caps the stored result message of one action
const MaxMessageLength = 500

// journalUC implements the journal.JournalUC interface.
// Either collaborator may be nil; with both nil the journal only logs.
type journalUC struct {
	journalRepo journal.JournalRepo
	journalGW   journal.JournalGW
	clock       models.Clock
}

// NewJournalUC creates a new journal use case
func NewJournalUC(journalRepo journal.JournalRepo, journalGW journal.JournalGW, clock models.Clock) journal.JournalUC {
	if clock == nil {
		clock = models.SystemClock{}
	}
	return &journalUC{
		journalRepo: journalRepo,
		journalGW:   journalGW,
		clock:       clock,
	}
}

// Record stamps the entry and hands it to the queue, writing directly when
// the queue is absent or refuses it. Journal failures never fail the action.
func (uc *journalUC) Record(ctx context.Context, entry models.ActionLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = uc.clock.Now()
	}
	entry.Message = utils.Truncate(entry.Message, MaxMessageLength)

	logger.Info("Booking action",
		logger.String("kind", string(entry.Kind)),
		logger.String("booking_id", entry.BookingID),
		logger.String("action", entry.Action),
		logger.String("operator", entry.Operator),
		logger.Bool("success", entry.Success))

	if uc.journalGW != nil {
		err := uc.journalGW.PublishAction(ctx, entry)
		if err == nil {
			return nil
		}
		logger.Warn("Failed to queue action log, writing directly",
			logger.String("booking_id", entry.BookingID),
			logger.Err(err))
	}

	if uc.journalRepo == nil {
		return nil
	}
	// the action already happened; the write outlives a cancelled request
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := uc.journalRepo.Insert(writeCtx, entry); err != nil {
		logger.Error("Failed to write action log",
			logger.String("booking_id", entry.BookingID),
			logger.Err(err))
		return err
	}
	return nil
}

// Persist writes an entry delivered by the queue
func (uc *journalUC) Persist(ctx context.Context, entry models.ActionLog) error {
	if entry.ID == uuid.Nil || entry.BookingID == "" {
		return apperror.NewValidationError("action_log", "Action log entry is missing its id or booking")
	}
	if uc.journalRepo == nil {
		return nil
	}
	return uc.journalRepo.Insert(ctx, entry)
}

// List returns recent entries, newest first
func (uc *journalUC) List(ctx context.Context, filter models.JournalFilter) ([]models.ActionLog, error) {
	if filter.Limit < 0 {
		return nil, apperror.NewValidationError("limit", "Limit cannot be negative")
	}
	if uc.journalRepo == nil {
		return []models.ActionLog{}, nil
	}
	return uc.journalRepo.List(ctx, filter)
}
