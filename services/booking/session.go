package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"madeasy/models"
	"madeasy/services/storage"
	"madeasy/utils"
)

const defaultSubmitTimeout = 15 * time.Second

// DefaultWizardService implements WizardService on top of a draft persistence
// backend. Every call rebuilds the session's Store from persistence, so a
// session survives process restarts.
type DefaultWizardService struct {
	Persistence   storage.DraftPersistence
	Creator       BookingCreator
	Logger        *zap.Logger
	Metrics       *utils.WizardMetrics
	Currency      string
	SubmitTimeout time.Duration
	RestoreWindow time.Duration
	Now           func() time.Time

	locksMu sync.Mutex
	locks   map[string]*sessionLock

	inflightMu sync.Mutex
	inflight   map[string]struct{}
}

func (s *DefaultWizardService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultWizardService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// sessionLock serializes requests of one session. The entry lives only while
// some request holds or waits for it.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func (s *DefaultWizardService) lock(sessionID string) func() {
	s.locksMu.Lock()
	if s.locks == nil {
		s.locks = map[string]*sessionLock{}
	}
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		s.locks[sessionID] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, sessionID)
		}
		s.locksMu.Unlock()
	}
}

func (s *DefaultWizardService) openStore(ctx context.Context, sessionID string) *Store {
	opts := []StoreOption{
		WithLogger(s.logger()),
		WithMetrics(s.Metrics),
		WithClock(s.now),
	}
	if s.RestoreWindow > 0 {
		opts = append(opts, WithRestoreWindow(s.RestoreWindow))
	}
	return NewStore(ctx, utils.DraftKey(sessionID), s.Persistence, opts...)
}

// existingStore opens the store of a session that was started earlier.
func (s *DefaultWizardService) existingStore(ctx context.Context, sessionID string) (*Store, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	store := s.openStore(ctx, sessionID)
	if !store.Found() {
		return nil, ErrSessionNotFound
	}
	return store, nil
}

func newBookingResponse(sessionID string, d models.BookingDraft) *models.BookingResponse {
	return &models.BookingResponse{
		SessionID:  sessionID,
		Progress:   Progress(d),
		StepTitle:  StepTitle(d.CurrentStep),
		CanProceed: CanProceed(d.CurrentStep, d),
		Draft:      d,
	}
}

// StartSession persists an empty draft under a new session id.
func (s *DefaultWizardService) StartSession(ctx context.Context) (*models.BookingResponse, error) {
	sessionID := uuid.New().String()
	draft := models.NewBookingDraft()
	env := storage.NewEnvelope(draft, s.now())
	if err := s.Persistence.Save(ctx, utils.DraftKey(sessionID), env); err != nil {
		s.logger().Error("failed to persist new booking draft", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to start booking session: %w", err)
	}
	s.logger().Info("booking session started", zap.String("sessionID", sessionID))
	return newBookingResponse(sessionID, draft), nil
}

func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	store, err := s.existingStore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return newBookingResponse(sessionID, store.State()), nil
}

func (s *DefaultWizardService) Dispatch(ctx context.Context, sessionID string, a Action) (*models.BookingResponse, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	store, err := s.existingStore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft := store.Dispatch(ctx, a)
	s.logger().Debug("booking action applied",
		zap.String("sessionID", sessionID),
		zap.String("type", string(a.Type())),
		zap.Int("step", draft.CurrentStep),
		zap.Int64("total", draft.TotalPrice),
	)
	return newBookingResponse(sessionID, draft), nil
}

// Validate reports the errors of a step without changing the draft.
// Step 0 means the current step.
func (s *DefaultWizardService) Validate(ctx context.Context, sessionID string, step int) (*models.ValidationResponse, error) {
	if step != 0 && (step < models.FirstStep || step > models.LastStep) {
		return nil, &WizardError{Code: CodeInvalidAction, Message: fmt.Sprintf("step must be between %d and %d", models.FirstStep, models.LastStep)}
	}

	unlock := s.lock(sessionID)
	defer unlock()

	store, err := s.existingStore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	d := store.State()
	if step == 0 {
		step = d.CurrentStep
	}
	errs := ValidateStep(step, d)
	return &models.ValidationResponse{Step: step, Errors: errs, CanProceed: len(errs) == 0}, nil
}

func (s *DefaultWizardService) Reset(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	return s.Dispatch(ctx, sessionID, ResetBooking{})
}

// Cancel drops the session's persisted draft.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	store, err := s.existingStore(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear booking draft: %w", err)
	}
	s.logger().Info("booking session cancelled", zap.String("sessionID", sessionID))
	return nil
}

func (s *DefaultWizardService) beginSubmit(sessionID string) bool {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	if s.inflight == nil {
		s.inflight = map[string]struct{}{}
	}
	if _, busy := s.inflight[sessionID]; busy {
		return false
	}
	s.inflight[sessionID] = struct{}{}
	return true
}

func (s *DefaultWizardService) endSubmit(sessionID string) {
	s.inflightMu.Lock()
	delete(s.inflight, sessionID)
	s.inflightMu.Unlock()
}

// Submit sends a complete draft to the booking API. The session lock is not
// held during the API call, so edits made meanwhile are kept; a second
// Submit on the same session fails with ErrSubmissionInFlight.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID, userID string) (*models.BookingConfirmation, error) {
	if !s.beginSubmit(sessionID) {
		s.Metrics.ObserveSubmission("in_flight", 0)
		return nil, ErrSubmissionInFlight
	}
	defer s.endSubmit(sessionID)

	req, err := s.prepareSubmit(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	timeout := s.SubmitTimeout
	if timeout <= 0 {
		timeout = defaultSubmitTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	started := time.Now()
	bookingID, callErr := s.Creator.CreateBooking(callCtx, req)
	cancel()
	elapsed := time.Since(started).Seconds()

	unlock := s.lock(sessionID)
	defer unlock()

	// The request context may be gone by now; the draft still has to leave the loading state.
	finishCtx := context.WithoutCancel(ctx)
	store := s.openStore(finishCtx, sessionID)

	if callErr != nil {
		s.Metrics.ObserveSubmission("failed", elapsed)
		s.logger().Error("booking creation failed", zap.String("sessionID", sessionID), zap.Error(callErr))
		if store.Found() {
			store.Dispatch(finishCtx, SetErrors{Errors: map[string]string{"submit": SubmitErrorMessage}})
			store.Dispatch(finishCtx, SetLoading{Loading: false})
		}
		return nil, &WizardError{Code: CodeSubmission, Message: callErr.Error(), Cause: callErr}
	}

	store.Dispatch(finishCtx, SetBookingID{BookingID: bookingID})
	store.Dispatch(finishCtx, SetStep{Step: models.StepConfirmation})
	draft := store.Dispatch(finishCtx, SetLoading{Loading: false})
	if err := store.Clear(finishCtx); err != nil {
		s.logger().Warn("failed to clear submitted booking draft", zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.Metrics.ObserveSubmission("created", elapsed)
	s.logger().Info("booking created",
		zap.String("sessionID", sessionID),
		zap.String("bookingID", bookingID),
		zap.Int64("total", draft.TotalPrice),
	)
	return &models.BookingConfirmation{
		BookingID:   bookingID,
		Draft:       draft,
		SubmittedAt: s.now(),
	}, nil
}

// prepareSubmit validates the draft and marks it loading.
func (s *DefaultWizardService) prepareSubmit(ctx context.Context, sessionID, userID string) (models.BookingRequest, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	store, err := s.existingStore(ctx, sessionID)
	if err != nil {
		return models.BookingRequest{}, err
	}
	d := store.State()
	if d.BookingID != "" {
		return models.BookingRequest{}, ErrAlreadySubmitted
	}
	if errs := ValidateForSubmission(d); len(errs) > 0 {
		s.Metrics.ObserveSubmission("incomplete", 0)
		store.Dispatch(ctx, SetErrors{Errors: errs})
		return models.BookingRequest{}, &ValidationError{Errors: errs}
	}

	d = store.Dispatch(ctx, SetLoading{Loading: true})
	return BuildBookingRequest(sessionID, userID, d, s.Currency), nil
}

// IsSubmissionError reports whether err came from the booking API.
func IsSubmissionError(err error) bool {
	var we *WizardError
	return errors.As(err, &we) && we.Code == CodeSubmission
}
