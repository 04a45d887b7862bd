package storage

import (
	"context"
	"errors"
	"time"

	"madeasy/models"
)

var (
	// ErrDraftNotFound is returned by Load when nothing is stored under the key.
	ErrDraftNotFound = errors.New("draft not found")
	// ErrMalformedDraft is returned by Load when the stored bytes cannot be decoded.
	ErrMalformedDraft = errors.New("malformed draft")
)

// Envelope is the persisted form of a draft: the whole state plus the time it was written.
type Envelope struct {
	Data models.BookingDraft `json:"data"`
	// Timestamp is the write time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// NewEnvelope wraps a draft stamped with the given time.
func NewEnvelope(draft models.BookingDraft, at time.Time) Envelope {
	return Envelope{Data: draft, Timestamp: at.UnixMilli()}
}

// SavedAt returns the write time.
func (e Envelope) SavedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Fresh reports whether the envelope was written less than window before now.
func (e Envelope) Fresh(now time.Time, window time.Duration) bool {
	return now.Sub(e.SavedAt()) < window
}

// DraftPersistence mirrors wizard drafts to durable storage.
type DraftPersistence interface {
	Load(ctx context.Context, key string) (*Envelope, error)
	Save(ctx context.Context, key string, env Envelope) error
	Clear(ctx context.Context, key string) error
}
