package booking

import (
	"bytes"
	"encoding/json"
	"fmt"

	"madeasy/models"
)

// ActionType names a draft mutation.
type ActionType string

const (
	ActionSetStep        ActionType = "SET_STEP"
	ActionSetServiceType ActionType = "SET_SERVICE_TYPE"
	ActionSetSchedule    ActionType = "SET_SCHEDULE"
	ActionSetLocation    ActionType = "SET_LOCATION"
	ActionSetExtras      ActionType = "SET_EXTRAS"
	ActionSetContactInfo ActionType = "SET_CONTACT_INFO"
	ActionSetPayment     ActionType = "SET_PAYMENT"
	ActionCalculateTotal ActionType = "CALCULATE_TOTAL"
	ActionResetBooking   ActionType = "RESET_BOOKING"

	// Used by the session service only.
	ActionSetLoading     ActionType = "SET_LOADING"
	ActionSetErrors      ActionType = "SET_ERRORS"
	ActionSetBookingID   ActionType = "SET_BOOKING_ID"
	ActionValidateStep   ActionType = "VALIDATE_STEP"
	ActionRestoreBooking ActionType = "RESTORE_BOOKING"
)

// Action is one of the closed set of draft mutations defined in this package.
type Action interface {
	Type() ActionType
	reduce(d *models.BookingDraft)
}

// SetStep moves the wizard to Step. Steps outside 1-7 are clamped.
type SetStep struct {
	Step int `json:"step"`
}

// SetServiceType selects the cleaning service.
type SetServiceType struct {
	ServiceType models.ServiceType `json:"serviceType"`
}

// SetSchedule merges the non-nil fields into the schedule.
type SetSchedule struct {
	Date      *string           `json:"date,omitempty"`
	Time      *string           `json:"time,omitempty"`
	Frequency *models.Frequency `json:"frequency,omitempty"`
}

// SetLocation merges the non-nil fields into the location.
type SetLocation struct {
	Address             *string              `json:"address,omitempty"`
	City                *string              `json:"city,omitempty"`
	PropertyType        *models.PropertyType `json:"propertyType,omitempty"`
	Bedrooms            *int                 `json:"bedrooms,omitempty"`
	Bathrooms           *int                 `json:"bathrooms,omitempty"`
	SquareFootage       *int                 `json:"squareFootage,omitempty"`
	SpecialInstructions *string              `json:"specialInstructions,omitempty"`
	Coordinates         *models.Coordinates  `json:"coordinates,omitempty"`
}

// SetExtras toggles the named add-ons; names not listed keep their value.
type SetExtras struct {
	Toggles map[models.Extra]bool
}

// SetContactInfo merges the non-nil fields into the contact details.
type SetContactInfo struct {
	FirstName           *string `json:"firstName,omitempty"`
	LastName            *string `json:"lastName,omitempty"`
	Email               *string `json:"email,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
}

// SetPayment merges the non-nil fields into the card details.
type SetPayment struct {
	CardNumber *string `json:"cardNumber,omitempty"`
	ExpiryDate *string `json:"expiryDate,omitempty"`
	CVV        *string `json:"cvv,omitempty"`
	NameOnCard *string `json:"nameOnCard,omitempty"`
	SaveCard   *bool   `json:"saveCard,omitempty"`
}

// CalculateTotal recomputes the price fields from the current inputs.
type CalculateTotal struct{}

// ResetBooking restores the empty draft.
type ResetBooking struct{}

type SetLoading struct{ Loading bool }

type SetErrors struct{ Errors map[string]string }

type SetBookingID struct{ BookingID string }

// ValidateCurrentStep replaces the errors with those of the current step.
type ValidateCurrentStep struct{}

// RestoreBooking replaces the whole draft with a persisted one.
type RestoreBooking struct{ Draft models.BookingDraft }

func (SetStep) Type() ActionType             { return ActionSetStep }
func (SetServiceType) Type() ActionType      { return ActionSetServiceType }
func (SetSchedule) Type() ActionType         { return ActionSetSchedule }
func (SetLocation) Type() ActionType         { return ActionSetLocation }
func (SetExtras) Type() ActionType           { return ActionSetExtras }
func (SetContactInfo) Type() ActionType      { return ActionSetContactInfo }
func (SetPayment) Type() ActionType          { return ActionSetPayment }
func (CalculateTotal) Type() ActionType      { return ActionCalculateTotal }
func (ResetBooking) Type() ActionType        { return ActionResetBooking }
func (SetLoading) Type() ActionType          { return ActionSetLoading }
func (SetErrors) Type() ActionType           { return ActionSetErrors }
func (SetBookingID) Type() ActionType        { return ActionSetBookingID }
func (ValidateCurrentStep) Type() ActionType { return ActionValidateStep }
func (RestoreBooking) Type() ActionType      { return ActionRestoreBooking }

// MarshalJSON writes the toggles as a flat object, e.g. {"laundry":true}.
func (a SetExtras) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Toggles)
}

// UnmarshalJSON reads a flat object of add-on flags and rejects unknown names.
func (a *SetExtras) UnmarshalJSON(b []byte) error {
	var toggles map[models.Extra]bool
	if err := json.Unmarshal(b, &toggles); err != nil {
		return err
	}
	for name := range toggles {
		if !name.Valid() {
			return fmt.Errorf("unknown extra %q", name)
		}
	}
	a.Toggles = toggles
	return nil
}

// ActionMessage is an action as sent over the wire: {"type": "...", "payload": {...}}.
type ActionMessage struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DecodeAction turns a wire message into a typed action. Only client-facing
// action types are accepted, and payloads with unknown fields are rejected.
func DecodeAction(msg ActionMessage) (Action, error) {
	switch msg.Type {
	case ActionSetStep:
		var a SetStep
		if err := decodeStrict(msg.Payload, &a); err != nil {
			return nil, err
		}
		return a, nil
	case ActionSetServiceType:
		var a SetServiceType
		if err := decodeStrict(msg.Payload, &a); err != nil {
			return nil, err
		}
		if !a.ServiceType.Valid() {
			return nil, newInvalidAction(msg.Type, fmt.Sprintf("unknown service type %q", a.ServiceType))
		}
		return a, nil
	case ActionSetSchedule:
		var a SetSchedule
		if err := decodeStrict(msg.Payload, &a); err != nil {
			return nil, err
		}
		if a.Frequency != nil && !a.Frequency.Valid() {
			return nil, newInvalidAction(msg.Type, fmt.Sprintf("unknown frequency %q", *a.Frequency))
		}
		return a, nil
	case ActionSetLocation:
		var a SetLocation
		if err := decodeStrict(msg.Payload, &a); err != nil {
			return nil, err
		}
		if a.PropertyType != nil && *a.PropertyType != "" && !a.PropertyType.Valid() {
			return nil, newInvalidAction(msg.Type, fmt.Sprintf("unknown property type %q", *a.PropertyType))
		}
		return a, nil
	case ActionSetExtras:
		var a SetExtras
		if len(msg.Payload) == 0 {
			return nil, newInvalidAction(msg.Type, "payload is required")
		}
		if err := json.Unmarshal(msg.Payload, &a); err != nil {
			return nil, newInvalidAction(msg.Type, err.Error())
		}
		return a, nil
	case ActionSetContactInfo:
		var a SetContactInfo
		if err := decodeStrict(msg.Payload, &a); err != nil {
			return nil, err
		}
		return a, nil
	case ActionSetPayment:
		var in PaymentInput
		if err := decodeStrict(msg.Payload, &in); err != nil {
			return nil, err
		}
		return in.Action(), nil
	case ActionCalculateTotal:
		return CalculateTotal{}, nil
	case ActionResetBooking:
		return ResetBooking{}, nil
	}
	return nil, newInvalidAction(msg.Type, "unsupported action type")
}

func decodeStrict(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return &WizardError{Code: CodeInvalidAction, Message: "payload is required"}
	}
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &WizardError{Code: CodeInvalidAction, Message: err.Error()}
	}
	return nil
}
