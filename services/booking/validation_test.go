package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"madeasy/models"
)

func completeDraft() models.BookingDraft {
	d := models.NewBookingDraft()
	d.ServiceType = models.ServiceStandard
	d.Schedule = models.Schedule{Date: "2026-10-20", Time: "09:00 AM", Frequency: models.FrequencyOnce}
	d.Location.Address = "Westlands, Nairobi"
	d.Location.PropertyType = models.PropertyApartment
	d.ContactInfo = models.ContactInfo{FirstName: "Wanjiru", LastName: "Kamau", Email: "wanjiru@example.com", Phone: "+254700000000"}
	d.Payment = models.Payment{CardNumber: "4111 1111 1111 1111", ExpiryDate: "12/28", CVV: "123", NameOnCard: "W Kamau"}
	return d
}

func TestValidateStep_CardNumberLength(t *testing.T) {
	d := completeDraft()

	d.Payment.CardNumber = "4111 1111 1111 111"
	errs := ValidateStep(models.StepPayment, d)
	assert.Equal(t, "Valid card number is required", errs["cardNumber"])

	d.Payment.CardNumber = "4111111111111111"
	errs = ValidateStep(models.StepPayment, d)
	assert.NotContains(t, errs, "cardNumber")
	assert.Empty(t, errs)
}

func TestValidateStep_EmptyDraft(t *testing.T) {
	d := models.NewBookingDraft()

	assert.Equal(t, map[string]string{"serviceType": "Please select a service type"}, ValidateStep(models.StepService, d))
	assert.Len(t, ValidateStep(models.StepSchedule, d), 2)

	loc := ValidateStep(models.StepLocation, d)
	assert.Contains(t, loc, "address")
	assert.Contains(t, loc, "propertyType")
	assert.NotContains(t, loc, "city", "city defaults to Nairobi")

	assert.Len(t, ValidateStep(models.StepContact, d), 4)
	assert.Len(t, ValidateStep(models.StepPayment, d), 4)
}

func TestValidateStep_StepsWithoutRequiredFields(t *testing.T) {
	d := models.NewBookingDraft()
	assert.Empty(t, ValidateStep(models.StepExtras, d))
	assert.Empty(t, ValidateStep(models.StepConfirmation, d))
	assert.Empty(t, ValidateStep(42, d))
}

func TestValidateStep_Email(t *testing.T) {
	d := completeDraft()
	d.ContactInfo.Email = "not-an-email"
	assert.Equal(t, "Email is invalid", ValidateStep(models.StepContact, d)["email"])

	d.ContactInfo.Email = ""
	assert.Equal(t, "Email is required", ValidateStep(models.StepContact, d)["email"])
}

func TestValidateStep_ExpiryAndCVV(t *testing.T) {
	d := completeDraft()
	d.Payment.ExpiryDate = "1228"
	d.Payment.CVV = "12"

	errs := ValidateStep(models.StepPayment, d)
	assert.Contains(t, errs, "expiryDate")
	assert.Contains(t, errs, "cvv")
}

func TestValidateStep_DoesNotMutate(t *testing.T) {
	d := models.NewBookingDraft()
	before := d.Clone()
	_ = ValidateStep(models.StepContact, d)
	assert.Equal(t, before, d)
}

func TestValidateForSubmission(t *testing.T) {
	assert.Empty(t, ValidateForSubmission(completeDraft()))

	d := completeDraft()
	d.Schedule.Time = ""
	d.ContactInfo.Phone = ""
	errs := ValidateForSubmission(d)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "time")
	assert.Contains(t, errs, "phone")
}

func TestCanProceed(t *testing.T) {
	d := models.NewBookingDraft()
	assert.False(t, CanProceed(models.StepService, d))
	d.ServiceType = models.ServiceDeep
	assert.True(t, CanProceed(models.StepService, d))
}
