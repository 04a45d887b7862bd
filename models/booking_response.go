// models/booking_response.go
package models

import "time"

// BookingResponse is returned by every wizard session endpoint.
type BookingResponse struct {
	SessionID string `json:"sessionId"`
	// Progress is the share of completed steps, 0-100.
	Progress   float64      `json:"progress"`
	StepTitle  string       `json:"stepTitle"`
	CanProceed bool         `json:"canProceed"`
	Draft      BookingDraft `json:"draft"`
}

// ValidationResponse reports the errors of one step without touching the draft.
type ValidationResponse struct {
	Step       int               `json:"step"`
	Errors     map[string]string `json:"errors"`
	CanProceed bool              `json:"canProceed"`
}

// BookingRequest is the payload handed to the booking-creation API.
// Card data is reduced to the last four digits.
type BookingRequest struct {
	SessionID         string      `json:"sessionId"`
	UserID            string      `json:"userId,omitempty"`
	ServiceType       ServiceType `json:"serviceType"`
	Schedule          Schedule    `json:"schedule"`
	Location          Location    `json:"location"`
	Extras            []Extra     `json:"extras"`
	ContactInfo       ContactInfo `json:"contactInfo"`
	CardLastFour      string      `json:"cardLastFour,omitempty"`
	BasePrice         int64       `json:"basePrice"`
	ExtrasPrice       int64       `json:"extrasPrice"`
	TotalPrice        int64       `json:"totalPrice"`
	Currency          string      `json:"currency"`
	EstimatedDuration string      `json:"estimatedDuration"`
}

// BookingConfirmation is returned once the booking API accepted the draft.
type BookingConfirmation struct {
	BookingID   string       `json:"bookingId"`
	Draft       BookingDraft `json:"draft"`
	SubmittedAt time.Time    `json:"submittedAt"`
}
