package booking

import (
	"regexp"
	"strings"

	"madeasy/models"
)

var (
	emailPattern  = regexp.MustCompile(`\S+@\S+\.\S+`)
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
)

const cardDigits = 16

// ValidateStep returns the field errors that keep the given step from advancing.
// An empty map means the step is complete. The draft is never modified.
func ValidateStep(step int, d models.BookingDraft) map[string]string {
	errs := map[string]string{}

	switch step {
	case models.StepService:
		if d.ServiceType == "" {
			errs["serviceType"] = "Please select a service type"
		}

	case models.StepSchedule:
		if d.Schedule.Date == "" {
			errs["date"] = "Please select a date"
		}
		if d.Schedule.Time == "" {
			errs["time"] = "Please select a time"
		}

	case models.StepLocation:
		if d.Location.Address == "" {
			errs["address"] = "Address is required"
		}
		if d.Location.City == "" {
			errs["city"] = "City is required"
		}
		if d.Location.PropertyType == "" {
			errs["propertyType"] = "Property type is required"
		}

	case models.StepContact:
		c := d.ContactInfo
		if c.FirstName == "" {
			errs["firstName"] = "First name is required"
		}
		if c.LastName == "" {
			errs["lastName"] = "Last name is required"
		}
		if c.Email == "" {
			errs["email"] = "Email is required"
		} else if !emailPattern.MatchString(c.Email) {
			errs["email"] = "Email is invalid"
		}
		if c.Phone == "" {
			errs["phone"] = "Phone number is required"
		}

	case models.StepPayment:
		p := d.Payment
		card := strings.ReplaceAll(p.CardNumber, " ", "")
		if len(card) != cardDigits || !isDigits(card) {
			errs["cardNumber"] = "Valid card number is required"
		}
		if !expiryPattern.MatchString(p.ExpiryDate) {
			errs["expiryDate"] = "Valid expiry date is required"
		}
		if len(p.CVV) < 3 {
			errs["cvv"] = "Valid CVV is required"
		}
		if p.NameOnCard == "" {
			errs["nameOnCard"] = "Name on card is required"
		}
	}

	return errs
}

// CanProceed reports whether the step has no validation errors.
func CanProceed(step int, d models.BookingDraft) bool {
	return len(ValidateStep(step, d)) == 0
}

// submissionSteps are the steps with required fields.
var submissionSteps = []int{
	models.StepService,
	models.StepSchedule,
	models.StepLocation,
	models.StepContact,
	models.StepPayment,
}

// ValidateForSubmission merges the errors of every step with required fields.
func ValidateForSubmission(d models.BookingDraft) map[string]string {
	errs := map[string]string{}
	for _, step := range submissionSteps {
		for field, msg := range ValidateStep(step, d) {
			errs[field] = msg
		}
	}
	return errs
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
