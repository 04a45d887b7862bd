package booking

import (
	"context"

	"madeasy/models"
)

// WizardService manages server-side booking wizard sessions.
type WizardService interface {
	StartSession(ctx context.Context) (*models.BookingResponse, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingResponse, error)
	Dispatch(ctx context.Context, sessionID string, a Action) (*models.BookingResponse, error)
	Validate(ctx context.Context, sessionID string, step int) (*models.ValidationResponse, error)
	Submit(ctx context.Context, sessionID, userID string) (*models.BookingConfirmation, error)
	Reset(ctx context.Context, sessionID string) (*models.BookingResponse, error)
	Cancel(ctx context.Context, sessionID string) error
}
