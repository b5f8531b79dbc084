package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/journal"
)

const (
	// DefaultListLimit applies when the caller asks for no limit
	DefaultListLimit = 50
	// MaxListLimit caps one page of the journal
	MaxListLimit = 500
)

// Schema creates the journal table; run once at startup
const Schema = `
	CREATE TABLE IF NOT EXISTS booking_action_logs (
		id         UUID PRIMARY KEY,
		kind       TEXT NOT NULL,
		booking_id TEXT NOT NULL,
		action     TEXT NOT NULL,
		operator   TEXT NOT NULL,
		success    BOOLEAN NOT NULL,
		message    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS booking_action_logs_booking_idx
		ON booking_action_logs (booking_id, created_at DESC);
`

// JournalRepo implements journal.JournalRepo on PostgreSQL
type JournalRepo struct {
	db *sqlx.DB
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *sqlx.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

var _ journal.JournalRepo = (*JournalRepo)(nil)

// Migrate creates the journal table when missing
func (r *JournalRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to migrate journal schema: %w", err)
	}
	return nil
}

// Insert stores one entry. Redelivered entries are ignored by id.
func (r *JournalRepo) Insert(ctx context.Context, entry models.ActionLog) error {
	query := `
		INSERT INTO booking_action_logs (id, kind, booking_id, action, operator,
			success, message, created_at
		) VALUES (:id, :kind, :booking_id, :action, :operator,
			:success, :message, :created_at)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("failed to insert action log: %w", err)
	}
	return nil
}

// List returns the newest entries first, optionally for one booking
func (r *JournalRepo) List(ctx context.Context, filter models.JournalFilter) ([]models.ActionLog, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	var (
		entries []models.ActionLog
		err     error
	)
	if filter.BookingID != "" {
		query := `
			SELECT id, kind, booking_id, action, operator, success, message, created_at
			FROM booking_action_logs
			WHERE booking_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		`
		err = r.db.SelectContext(ctx, &entries, query, filter.BookingID, limit)
	} else {
		query := `
			SELECT id, kind, booking_id, action, operator, success, message, created_at
			FROM booking_action_logs
			ORDER BY created_at DESC
			LIMIT $1
		`
		err = r.db.SelectContext(ctx, &entries, query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list action logs: %w", err)
	}
	if entries == nil {
		entries = []models.ActionLog{}
	}
	return entries, nil
}
