package booking

import "madeasy/models"

// Reduce applies one action to a draft and returns the next draft.
// The input is not modified. Actions that change a pricing input recompute
// the price fields in the same step, and input actions re-validate the
// current step before returning.
func Reduce(d models.BookingDraft, a Action) models.BookingDraft {
	next := d.Clone()
	a.reduce(&next)
	if revalidates(a.Type()) {
		next.Errors = ValidateStep(next.CurrentStep, next)
	}
	if next.Errors == nil {
		next.Errors = map[string]string{}
	}
	return next
}

func revalidates(t ActionType) bool {
	switch t {
	case ActionSetServiceType, ActionSetSchedule, ActionSetLocation, ActionSetContactInfo, ActionSetPayment:
		return true
	}
	return false
}

// ClampStep keeps a step number within the wizard.
func ClampStep(step int) int {
	if step < models.FirstStep {
		return models.FirstStep
	}
	if step > models.LastStep {
		return models.LastStep
	}
	return step
}

func (a SetStep) reduce(d *models.BookingDraft) {
	step := ClampStep(a.Step)
	d.CurrentStep = step
	d.LastStepCompleted = max(d.LastStepCompleted, step-1)
	d.Errors = map[string]string{}
}

func (a SetServiceType) reduce(d *models.BookingDraft) {
	d.ServiceType = a.ServiceType
	applyQuote(d)
}

func (a SetSchedule) reduce(d *models.BookingDraft) {
	if a.Date != nil {
		d.Schedule.Date = *a.Date
	}
	if a.Time != nil {
		d.Schedule.Time = *a.Time
	}
	if a.Frequency != nil {
		d.Schedule.Frequency = *a.Frequency
	}
}

func (a SetLocation) reduce(d *models.BookingDraft) {
	loc := &d.Location
	if a.Address != nil {
		loc.Address = *a.Address
	}
	if a.City != nil {
		loc.City = *a.City
	}
	if a.PropertyType != nil {
		loc.PropertyType = *a.PropertyType
	}
	if a.Bedrooms != nil {
		loc.Bedrooms = ClampRoomCount(*a.Bedrooms)
	}
	if a.Bathrooms != nil {
		loc.Bathrooms = ClampRoomCount(*a.Bathrooms)
	}
	if a.SquareFootage != nil {
		loc.SquareFootage = max(*a.SquareFootage, 0)
	}
	if a.SpecialInstructions != nil {
		loc.SpecialInstructions = *a.SpecialInstructions
	}
	if a.Coordinates != nil {
		loc.Coordinates = *a.Coordinates
	}
	applyQuote(d)
}

func (a SetExtras) reduce(d *models.BookingDraft) {
	for name, on := range a.Toggles {
		d.Extras.Set(name, on)
	}
	applyQuote(d)
}

func (a SetContactInfo) reduce(d *models.BookingDraft) {
	c := &d.ContactInfo
	if a.FirstName != nil {
		c.FirstName = *a.FirstName
	}
	if a.LastName != nil {
		c.LastName = *a.LastName
	}
	if a.Email != nil {
		c.Email = *a.Email
	}
	if a.Phone != nil {
		c.Phone = *a.Phone
	}
	if a.SpecialInstructions != nil {
		c.SpecialInstructions = *a.SpecialInstructions
	}
}

func (a SetPayment) reduce(d *models.BookingDraft) {
	p := &d.Payment
	if a.CardNumber != nil {
		p.CardNumber = *a.CardNumber
	}
	if a.ExpiryDate != nil {
		p.ExpiryDate = *a.ExpiryDate
	}
	if a.CVV != nil {
		p.CVV = *a.CVV
	}
	if a.NameOnCard != nil {
		p.NameOnCard = *a.NameOnCard
	}
	if a.SaveCard != nil {
		p.SaveCard = *a.SaveCard
	}
}

func (CalculateTotal) reduce(d *models.BookingDraft) {
	applyQuote(d)
}

func (ResetBooking) reduce(d *models.BookingDraft) {
	*d = models.NewBookingDraft()
}

func (a SetLoading) reduce(d *models.BookingDraft) {
	d.IsLoading = a.Loading
}

func (a SetErrors) reduce(d *models.BookingDraft) {
	errs := make(map[string]string, len(a.Errors))
	for k, v := range a.Errors {
		errs[k] = v
	}
	d.Errors = errs
}

func (a SetBookingID) reduce(d *models.BookingDraft) {
	d.BookingID = a.BookingID
}

func (ValidateCurrentStep) reduce(d *models.BookingDraft) {
	d.Errors = ValidateStep(d.CurrentStep, *d)
}

func (a RestoreBooking) reduce(d *models.BookingDraft) {
	*d = a.Draft.Clone()
	d.CurrentStep = ClampStep(d.CurrentStep)
	d.LastStepCompleted = max(d.LastStepCompleted, d.CurrentStep-1)
}
