package booking

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidAction   = "invalidAction"
	CodeIncompleteDraft = "incompleteDraft"
	CodeSubmission      = "submissionFailed"
)

// SubmitErrorMessage is shown on the draft when the booking API rejects a submission.
const SubmitErrorMessage = "Failed to create booking. Please try again."

var (
	ErrSessionNotFound    = errors.New("booking session not found")
	ErrSubmissionInFlight = errors.New("booking submission already in progress")
	ErrIncompleteDraft    = errors.New("booking draft is incomplete")
	ErrAlreadySubmitted   = errors.New("booking already submitted")
)

type WizardError struct {
	Code    string
	Message string
	Cause   error
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *WizardError) Unwrap() error {
	return e.Cause
}

func newInvalidAction(t ActionType, msg string) error {
	return &WizardError{
		Code:    CodeInvalidAction,
		Message: fmt.Sprintf("%s: %s", t, msg),
	}
}

// ValidationError carries the field errors that block a submission.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d field(s) invalid", CodeIncompleteDraft, len(e.Errors))
}

func (e *ValidationError) Unwrap() error {
	return ErrIncompleteDraft
}
