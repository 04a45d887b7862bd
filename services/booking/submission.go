package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"madeasy/models"
)

// BookingCreator is the booking-creation collaborator. It returns the id of
// the created booking.
type BookingCreator interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (string, error)
}

// BuildBookingRequest turns a complete draft into the booking API payload.
// Only the last four card digits leave the service.
func BuildBookingRequest(sessionID, userID string, d models.BookingDraft, currency string) models.BookingRequest {
	return models.BookingRequest{
		SessionID:         sessionID,
		UserID:            userID,
		ServiceType:       d.ServiceType,
		Schedule:          d.Schedule,
		Location:          d.Location,
		Extras:            d.Extras.Selected(),
		ContactInfo:       d.ContactInfo,
		CardLastFour:      LastFourDigits(d.Payment.CardNumber),
		BasePrice:         d.BasePrice,
		ExtrasPrice:       d.ExtrasPrice,
		TotalPrice:        d.TotalPrice,
		Currency:          currency,
		EstimatedDuration: d.EstimatedDuration,
	}
}

// LocalBookingCreator issues booking ids without a remote API.
type LocalBookingCreator struct {
	Now func() time.Time
}

func (c LocalBookingCreator) CreateBooking(ctx context.Context, _ models.BookingRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return LocalBookingID(now()), nil
}

// LocalBookingID renders "BK-" followed by the base-36 millisecond timestamp.
func LocalBookingID(at time.Time) string {
	return "BK-" + strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))
}

var errEmptyBookingID = errors.New("booking API returned no booking id")

// HTTPBookingCreator posts booking requests to a remote booking API.
type HTTPBookingCreator struct {
	URL    string
	Client *http.Client
}

func NewHTTPBookingCreator(url string, timeout time.Duration) *HTTPBookingCreator {
	return &HTTPBookingCreator{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

type createBookingResponse struct {
	BookingID string `json:"bookingId"`
	Error     string `json:"error,omitempty"`
}

func (c *HTTPBookingCreator) CreateBooking(ctx context.Context, req models.BookingRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode booking request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("booking API request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read booking API response: %w", err)
	}
	var out createBookingResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil && resp.StatusCode < 300 {
			return "", fmt.Errorf("failed to decode booking API response: %w", err)
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if out.Error != "" {
			return "", fmt.Errorf("booking API returned %d: %s", resp.StatusCode, out.Error)
		}
		return "", fmt.Errorf("booking API returned %d", resp.StatusCode)
	}
	if out.BookingID == "" {
		return "", errEmptyBookingID
	}
	return out.BookingID, nil
}
