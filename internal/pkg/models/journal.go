package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingKind distinguishes customer and corporate bookings
type BookingKind string

const (
	BookingKindB2C BookingKind = "b2c"
	BookingKindB2B BookingKind = "b2b"
)

// ActionLog records one lifecycle action taken from the console
type ActionLog struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	Kind      BookingKind `json:"kind" db:"kind"`
	BookingID string      `json:"booking_id" db:"booking_id"`
	Action    string      `json:"action" db:"action"`
	Operator  string      `json:"operator" db:"operator"`
	Success   bool        `json:"success" db:"success"`
	Message   string      `json:"message" db:"message"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// RefreshNotice tells other console instances a collection changed
type RefreshNotice struct {
	Origin     string    `json:"origin"`
	Collection string    `json:"collection"`
	BookingID  string    `json:"booking_id,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}

// ActionResult is the uniform answer of a mutating action
type ActionResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// JournalFilter narrows the action journal listing
type JournalFilter struct {
	BookingID string
	Limit     int
}
