package models

// Wizard steps.
const (
	StepService = iota + 1
	StepSchedule
	StepLocation
	StepExtras
	StepContact
	StepPayment
	StepConfirmation
)

const (
	FirstStep = StepService
	LastStep  = StepConfirmation
	StepCount = LastStep
)

// DefaultCity is preselected on the location step.
const DefaultCity = "Nairobi"

// DefaultDuration is the estimate shown before any size surcharge applies.
const DefaultDuration = "2-3 hours"

type Schedule struct {
	Date      string    `json:"date" bson:"date"`
	Time      string    `json:"time" bson:"time"`
	Frequency Frequency `json:"frequency" bson:"frequency"`
}

type Coordinates struct {
	Lat *float64 `json:"lat" bson:"lat"`
	Lng *float64 `json:"lng" bson:"lng"`
}

type Location struct {
	Address             string       `json:"address" bson:"address"`
	City                string       `json:"city" bson:"city"`
	PropertyType        PropertyType `json:"propertyType" bson:"propertyType"`
	Bedrooms            int          `json:"bedrooms" bson:"bedrooms"`
	Bathrooms           int          `json:"bathrooms" bson:"bathrooms"`
	SquareFootage       int          `json:"squareFootage" bson:"squareFootage"`
	SpecialInstructions string       `json:"specialInstructions" bson:"specialInstructions"`
	Coordinates         Coordinates  `json:"coordinates" bson:"coordinates"`
}

// Extras holds one flag per add-on.
type Extras struct {
	DeepCleaning    bool `json:"deepCleaning" bson:"deepCleaning"`
	WindowCleaning  bool `json:"windowCleaning" bson:"windowCleaning"`
	Laundry         bool `json:"laundry" bson:"laundry"`
	FridgeCleaning  bool `json:"fridgeCleaning" bson:"fridgeCleaning"`
	OvenCleaning    bool `json:"ovenCleaning" bson:"ovenCleaning"`
	BalconyCleaning bool `json:"balconyCleaning" bson:"balconyCleaning"`
	CarpetCleaning  bool `json:"carpetCleaning" bson:"carpetCleaning"`
}

func (e *Extras) flag(name Extra) *bool {
	switch name {
	case ExtraDeepCleaning:
		return &e.DeepCleaning
	case ExtraWindowCleaning:
		return &e.WindowCleaning
	case ExtraLaundry:
		return &e.Laundry
	case ExtraFridgeCleaning:
		return &e.FridgeCleaning
	case ExtraOvenCleaning:
		return &e.OvenCleaning
	case ExtraBalconyCleaning:
		return &e.BalconyCleaning
	case ExtraCarpetCleaning:
		return &e.CarpetCleaning
	}
	return nil
}

// Get reports whether the named add-on is selected. Unknown names are never selected.
func (e Extras) Get(name Extra) bool {
	if f := e.flag(name); f != nil {
		return *f
	}
	return false
}

// Set toggles the named add-on and reports whether the name is known.
func (e *Extras) Set(name Extra, on bool) bool {
	f := e.flag(name)
	if f == nil {
		return false
	}
	*f = on
	return true
}

// Selected returns the enabled add-ons in display order.
func (e Extras) Selected() []Extra {
	var out []Extra
	for _, name := range AllExtras {
		if e.Get(name) {
			out = append(out, name)
		}
	}
	return out
}

type ContactInfo struct {
	FirstName           string `json:"firstName" bson:"firstName"`
	LastName            string `json:"lastName" bson:"lastName"`
	Email               string `json:"email" bson:"email"`
	Phone               string `json:"phone" bson:"phone"`
	SpecialInstructions string `json:"specialInstructions" bson:"specialInstructions"`
}

// Payment holds card fields as typed by the client. It is never sent to the booking API.
type Payment struct {
	CardNumber string `json:"cardNumber" bson:"cardNumber"`
	ExpiryDate string `json:"expiryDate" bson:"expiryDate"`
	CVV        string `json:"cvv" bson:"cvv"`
	NameOnCard string `json:"nameOnCard" bson:"nameOnCard"`
	SaveCard   bool   `json:"saveCard" bson:"saveCard"`
}

// BookingDraft is the in-progress booking owned by one wizard session.
type BookingDraft struct {
	CurrentStep       int               `json:"currentStep" bson:"currentStep"`
	LastStepCompleted int               `json:"lastStepCompleted" bson:"lastStepCompleted"`
	ServiceType       ServiceType       `json:"serviceType" bson:"serviceType"`
	Schedule          Schedule          `json:"schedule" bson:"schedule"`
	Location          Location          `json:"location" bson:"location"`
	Extras            Extras            `json:"extras" bson:"extras"`
	ContactInfo       ContactInfo       `json:"contactInfo" bson:"contactInfo"`
	Payment           Payment           `json:"payment" bson:"payment"`
	BasePrice         int64             `json:"basePrice" bson:"basePrice"`
	ExtrasPrice       int64             `json:"extrasPrice" bson:"extrasPrice"`
	TotalPrice        int64             `json:"totalPrice" bson:"totalPrice"`
	EstimatedDuration string            `json:"estimatedDuration" bson:"estimatedDuration"`
	IsLoading         bool              `json:"isLoading" bson:"isLoading"`
	Errors            map[string]string `json:"errors" bson:"errors"`
	BookingID         string            `json:"bookingId,omitempty" bson:"bookingId,omitempty"`
}

// NewBookingDraft returns the empty draft a wizard session starts from.
func NewBookingDraft() BookingDraft {
	return BookingDraft{
		CurrentStep:       FirstStep,
		LastStepCompleted: 0,
		Schedule: Schedule{
			Frequency: FrequencyOnce,
		},
		Location: Location{
			City:      DefaultCity,
			Bedrooms:  1,
			Bathrooms: 1,
		},
		EstimatedDuration: DefaultDuration,
		Errors:            map[string]string{},
	}
}

// Clone returns a copy that shares no mutable state with d.
func (d BookingDraft) Clone() BookingDraft {
	out := d
	out.Errors = make(map[string]string, len(d.Errors))
	for k, v := range d.Errors {
		out.Errors[k] = v
	}
	if d.Location.Coordinates.Lat != nil {
		lat := *d.Location.Coordinates.Lat
		out.Location.Coordinates.Lat = &lat
	}
	if d.Location.Coordinates.Lng != nil {
		lng := *d.Location.Coordinates.Lng
		out.Location.Coordinates.Lng = &lng
	}
	return out
}
