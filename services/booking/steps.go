package booking

import (
	"strings"
	"time"

	"madeasy/models"
)

// StepInfo describes one wizard step for progress displays.
type StepInfo struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var Steps = []StepInfo{
	{Number: models.StepService, Title: "Service", Description: "Choose Service"},
	{Number: models.StepSchedule, Title: "Schedule", Description: "Date & Time"},
	{Number: models.StepLocation, Title: "Location", Description: "Property Details"},
	{Number: models.StepExtras, Title: "Extras", Description: "Additional Services"},
	{Number: models.StepContact, Title: "Contact", Description: "Your Information"},
	{Number: models.StepPayment, Title: "Payment", Description: "Payment Details"},
	{Number: models.StepConfirmation, Title: "Confirm", Description: "Review & Book"},
}

// StepTitle returns the title of a step, or "" outside the wizard.
func StepTitle(step int) string {
	if step < models.FirstStep || step > models.LastStep {
		return ""
	}
	return Steps[step-1].Title
}

// Progress is the completed share of the wizard, 0-100.
func Progress(d models.BookingDraft) float64 {
	return float64(d.LastStepCompleted) / float64(models.StepCount) * 100
}

// ServiceOption is one entry of the service catalogue.
type ServiceOption struct {
	ID          models.ServiceType `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	FromPrice   int64              `json:"fromPrice"`
	Duration    string             `json:"duration"`
	Features    []string           `json:"features"`
	Popular     bool               `json:"popular"`
}

// ExtraOption is one entry of the add-on catalogue.
type ExtraOption struct {
	ID          models.Extra `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       int64        `json:"price"`
}

// FrequencyOption is a selectable schedule frequency.
type FrequencyOption struct {
	ID          models.Frequency `json:"id"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
}

// PropertyOption is a selectable property type.
type PropertyOption struct {
	ID          models.PropertyType `json:"id"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
}

// Catalogue is everything the step views render as choices.
type Catalogue struct {
	Currency    string            `json:"currency"`
	Steps       []StepInfo        `json:"steps"`
	Services    []ServiceOption   `json:"services"`
	Extras      []ExtraOption     `json:"extras"`
	Frequencies []FrequencyOption `json:"frequencies"`
	Properties  []PropertyOption  `json:"properties"`
	TimeSlots   []string          `json:"timeSlots"`
}

func ServiceOptions() []ServiceOption {
	return []ServiceOption{
		{
			ID:          models.ServiceStandard,
			Title:       "Standard Cleaning",
			Description: "Regular maintenance cleaning to keep your space fresh and tidy",
			FromPrice:   ServiceBasePrice(models.ServiceStandard),
			Duration:    "2-3 hours",
			Features:    []string{"Dusting", "Vacuuming", "Surface wiping", "Kitchen & bathroom sanitization"},
			Popular:     true,
		},
		{
			ID:          models.ServiceDeep,
			Title:       "Deep Cleaning",
			Description: "Thorough, intensive cleaning for move-in/move-out or seasonal deep cleans",
			FromPrice:   ServiceBasePrice(models.ServiceDeep),
			Duration:    "4-6 hours",
			Features:    []string{"Inside appliances", "Window tracks", "Baseboards", "Cabinet organization"},
		},
		{
			ID:          models.ServiceMoveIn,
			Title:       "Move-In Cleaning",
			Description: "Perfect for new homes - comprehensive cleaning before you move in",
			FromPrice:   ServiceBasePrice(models.ServiceMoveIn),
			Duration:    "5-7 hours",
			Features:    []string{"All deep cleaning", "Closet sanitization", "Inside cabinets", "Complete wipe-down"},
		},
		{
			ID:          models.ServiceMoveOut,
			Title:       "Move-Out Cleaning",
			Description: "Leave your old place spotless for the next occupants",
			FromPrice:   ServiceBasePrice(models.ServiceMoveOut),
			Duration:    "5-7 hours",
			Features:    []string{"All deep cleaning", "Wall wiping", "Light fixtures", "Final inspection"},
		},
	}
}

var extraDetails = map[models.Extra][2]string{
	models.ExtraDeepCleaning:    {"Deep Cleaning", "Intensive cleaning for hard-to-reach areas"},
	models.ExtraWindowCleaning:  {"Window Cleaning", "Inside window cleaning and tracks"},
	models.ExtraLaundry:         {"Laundry Service", "Wash, dry, and fold your laundry"},
	models.ExtraFridgeCleaning:  {"Fridge Cleaning", "Deep clean and organize refrigerator"},
	models.ExtraOvenCleaning:    {"Oven Cleaning", "Thorough oven and stove cleaning"},
	models.ExtraBalconyCleaning: {"Balcony Cleaning", "Sweep, mop and wipe down balcony surfaces"},
	models.ExtraCarpetCleaning:  {"Carpet Cleaning", "Shampoo and vacuum carpets and rugs"},
}

func ExtraOptions() []ExtraOption {
	out := make([]ExtraOption, 0, len(models.AllExtras))
	for _, name := range models.AllExtras {
		details := extraDetails[name]
		out = append(out, ExtraOption{
			ID:          name,
			Title:       details[0],
			Description: details[1],
			Price:       ExtraPrice(name),
		})
	}
	return out
}

func FrequencyOptions() []FrequencyOption {
	return []FrequencyOption{
		{ID: models.FrequencyOnce, Label: "One Time", Description: "Single cleaning session"},
		{ID: models.FrequencyWeekly, Label: "Weekly", Description: "Every week - Save 10%"},
		{ID: models.FrequencyBiweekly, Label: "Bi-Weekly", Description: "Every 2 weeks - Save 15%"},
		{ID: models.FrequencyMonthly, Label: "Monthly", Description: "Every month - Save 20%"},
	}
}

func PropertyOptions() []PropertyOption {
	return []PropertyOption{
		{ID: models.PropertyApartment, Label: "Apartment", Description: "Flat or condominium"},
		{ID: models.PropertyHouse, Label: "House", Description: "Standalone home"},
		{ID: models.PropertyTownhouse, Label: "Townhouse", Description: "Row house or duplex"},
		{ID: models.PropertyOffice, Label: "Office", Description: "Commercial space"},
	}
}

// TimeSlots are the bookable start times.
var TimeSlots = []string{
	"08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
}

// NewCatalogue assembles the choices shown by the step views.
func NewCatalogue(currency string) Catalogue {
	return Catalogue{
		Currency:    currency,
		Steps:       Steps,
		Services:    ServiceOptions(),
		Extras:      ExtraOptions(),
		Frequencies: FrequencyOptions(),
		Properties:  PropertyOptions(),
		TimeSlots:   TimeSlots,
	}
}

const (
	bookingHorizonDays = 30
	dateLayout         = "2006-01-02"
)

// AvailableDates lists the bookable dates after today: the next 30 days without Sundays.
func AvailableDates(today time.Time) []string {
	var dates []string
	for i := 1; i <= bookingHorizonDays; i++ {
		d := today.AddDate(0, 0, i)
		if d.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

// MaxRooms caps bedroom and bathroom counts.
const MaxRooms = 10

// ClampRoomCount keeps a bedroom or bathroom count within 1-10.
func ClampRoomCount(n int) int {
	return max(1, min(MaxRooms, n))
}

// DigitsOnly strips every non-digit character.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber groups up to 16 digits in blocks of four: "4111 1111 1111 1111".
func FormatCardNumber(input string) string {
	digits := DigitsOnly(input)
	if len(digits) > cardDigits {
		digits = digits[:cardDigits]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiryDate renders typed digits as MM/YY.
func FormatExpiryDate(input string) string {
	digits := DigitsOnly(input)
	if len(digits) < 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}

// FormatCVV keeps at most four digits.
func FormatCVV(input string) string {
	digits := DigitsOnly(input)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits
}

// LastFourDigits returns the card's last four digits, or "****" when there are none.
func LastFourDigits(cardNumber string) string {
	clean := strings.ReplaceAll(cardNumber, " ", "")
	if clean == "" {
		return "****"
	}
	if len(clean) <= 4 {
		return clean
	}
	return clean[len(clean)-4:]
}

// PaymentInput is raw card input as typed by the client.
type PaymentInput struct {
	CardNumber *string `json:"cardNumber,omitempty"`
	ExpiryDate *string `json:"expiryDate,omitempty"`
	CVV        *string `json:"cvv,omitempty"`
	NameOnCard *string `json:"nameOnCard,omitempty"`
	SaveCard   *bool   `json:"saveCard,omitempty"`
}

// Action formats the card fields the way the payment view does before dispatching.
func (in PaymentInput) Action() SetPayment {
	a := SetPayment{NameOnCard: in.NameOnCard, SaveCard: in.SaveCard}
	if in.CardNumber != nil {
		v := FormatCardNumber(*in.CardNumber)
		a.CardNumber = &v
	}
	if in.ExpiryDate != nil {
		v := FormatExpiryDate(*in.ExpiryDate)
		a.ExpiryDate = &v
	}
	if in.CVV != nil {
		v := FormatCVV(*in.CVV)
		a.CVV = &v
	}
	return a
}

// ToggleExtra flips one add-on relative to the current draft.
func ToggleExtra(d models.BookingDraft, name models.Extra) SetExtras {
	return SetExtras{Toggles: map[models.Extra]bool{name: !d.Extras.Get(name)}}
}

// PropertySizeLabel summarizes the property for the location view.
func PropertySizeLabel(loc models.Location) string {
	switch {
	case loc.Bedrooms <= 1 && loc.Bathrooms <= 1:
		return "Studio/1BR"
	case loc.Bedrooms <= 3 && loc.Bathrooms <= 2:
		return "2-3 Bedrooms"
	default:
		return "4+ Bedrooms"
	}
}

// ServiceName is the display name of a service; unknown types read as standard.
func ServiceName(t models.ServiceType) string {
	for _, opt := range ServiceOptions() {
		if opt.ID == t {
			return opt.Title
		}
	}
	return "Standard Cleaning"
}

// FrequencyLabel is the display name of a frequency; unknown values read as monthly.
func FrequencyLabel(f models.Frequency) string {
	switch f {
	case models.FrequencyOnce:
		return "One Time"
	case models.FrequencyWeekly:
		return "Weekly"
	case models.FrequencyBiweekly:
		return "Bi-Weekly"
	}
	return "Monthly"
}

// PropertyLabel is the display name of a property type; unknown values read as office.
func PropertyLabel(p models.PropertyType) string {
	switch p {
	case models.PropertyApartment:
		return "Apartment"
	case models.PropertyHouse:
		return "House"
	case models.PropertyTownhouse:
		return "Townhouse"
	}
	return "Office"
}
