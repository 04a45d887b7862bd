package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"madeasy/models"
	"madeasy/services/storage"
	"madeasy/utils"
)

// DefaultRestoreWindow is how long a persisted draft stays restorable.
const DefaultRestoreWindow = 24 * time.Hour

// Store is the single source of truth for one wizard session's draft.
// It is not safe for concurrent use; callers serialize dispatches.
type Store struct {
	key         string
	persistence storage.DraftPersistence
	now         func() time.Time
	window      time.Duration
	logger      *zap.Logger
	metrics     *utils.WizardMetrics
	state       models.BookingDraft
	found       bool
}

type StoreOption func(*Store)

func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func WithRestoreWindow(window time.Duration) StoreOption {
	return func(s *Store) { s.window = window }
}

func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

func WithMetrics(m *utils.WizardMetrics) StoreOption {
	return func(s *Store) { s.metrics = m }
}

// NewStore creates the store for key, starting from the persisted draft when one
// younger than the restore window exists and from an empty draft otherwise.
func NewStore(ctx context.Context, key string, persistence storage.DraftPersistence, opts ...StoreOption) *Store {
	s := &Store{
		key:         key,
		persistence: persistence,
		now:         time.Now,
		window:      DefaultRestoreWindow,
		logger:      zap.NewNop(),
		state:       models.NewBookingDraft(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) {
	env, err := s.persistence.Load(ctx, s.key)
	s.found = !errors.Is(err, storage.ErrDraftNotFound)
	switch {
	case errors.Is(err, storage.ErrDraftNotFound):
		s.metrics.ObserveRestore("missing")
		return
	case errors.Is(err, storage.ErrMalformedDraft):
		s.logger.Warn("discarding malformed booking draft", zap.String("key", s.key), zap.Error(err))
		s.metrics.ObserveRestore("malformed")
		return
	case err != nil:
		s.logger.Warn("failed to load booking draft", zap.String("key", s.key), zap.Error(err))
		s.metrics.ObserveRestore("error")
		return
	}

	if !env.Fresh(s.now(), s.window) {
		s.logger.Debug("booking draft expired", zap.String("key", s.key), zap.Time("savedAt", env.SavedAt()))
		s.metrics.ObserveRestore("expired")
		return
	}
	s.state = Reduce(s.state, RestoreBooking{Draft: env.Data})
	s.metrics.ObserveRestore("restored")
}

// Key returns the persistence key of the draft.
func (s *Store) Key() string {
	return s.key
}

// Found reports whether persistence held an entry for the key when the
// store was created, restorable or not.
func (s *Store) Found() bool {
	return s.found
}

// State returns a snapshot of the draft.
func (s *Store) State() models.BookingDraft {
	return s.state.Clone()
}

// Dispatch applies the action, mirrors the new state to persistence and
// returns a snapshot. Persistence failures are logged, never returned.
func (s *Store) Dispatch(ctx context.Context, a Action) models.BookingDraft {
	s.state = Reduce(s.state, a)
	s.metrics.ObserveAction(string(a.Type()))
	s.persist(ctx)
	return s.State()
}

func (s *Store) persist(ctx context.Context) {
	env := storage.NewEnvelope(s.state, s.now())
	if err := s.persistence.Save(ctx, s.key, env); err != nil {
		s.logger.Warn("failed to persist booking draft", zap.String("key", s.key), zap.Error(err))
		s.metrics.ObservePersistenceError("save")
	}
}

// Clear deletes the persisted draft. The in-memory state is kept.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.persistence.Clear(ctx, s.key); err != nil {
		s.metrics.ObservePersistenceError("clear")
		return err
	}
	return nil
}
