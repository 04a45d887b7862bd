package booking

import "madeasy/models"

// Base prices in KES.
var basePrices = map[models.ServiceType]int64{
	models.ServiceStandard: 2000,
	models.ServiceDeep:     4500,
	models.ServiceMoveIn:   5000,
	models.ServiceMoveOut:  2500,
}

// fallbackBasePrice applies to custom and unset service types.
const fallbackBasePrice int64 = 2000

// Extras prices in KES.
var extraPrices = map[models.Extra]int64{
	models.ExtraDeepCleaning:    5000,
	models.ExtraWindowCleaning:  3000,
	models.ExtraLaundry:         1500,
	models.ExtraFridgeCleaning:  2000,
	models.ExtraOvenCleaning:    2000,
	models.ExtraBalconyCleaning: 1500,
	models.ExtraCarpetCleaning:  2500,
}

const (
	includedBedrooms     = 2
	bedroomSurcharge     = 500
	includedBathrooms    = 2
	bathroomSurcharge    = 400
	includedSquareFeet   = 1500
	squareFeetBlock      = 500
	squareFeetSurcharge  = 300
	durationLargeHome    = "3-4 hours"
	durationLargeFootage = "4-5 hours"
)

// Quote is the price breakdown of a draft.
type Quote struct {
	BasePrice         int64  `json:"basePrice"`
	ExtrasPrice       int64  `json:"extrasPrice"`
	TotalPrice        int64  `json:"totalPrice"`
	EstimatedDuration string `json:"estimatedDuration"`
}

// ServiceBasePrice returns the list price of a service before size adjustments.
func ServiceBasePrice(serviceType models.ServiceType) int64 {
	if p, ok := basePrices[serviceType]; ok {
		return p
	}
	return fallbackBasePrice
}

// ExtraPrice returns the fixed price of one add-on, 0 for unknown names.
func ExtraPrice(extra models.Extra) int64 {
	return extraPrices[extra]
}

// serviceDetails returns the size-adjusted base price and the duration label.
// When both the bedroom and the footage rule match, the footage label wins.
func serviceDetails(serviceType models.ServiceType, loc models.Location) (int64, string) {
	price := ServiceBasePrice(serviceType)
	duration := models.DefaultDuration

	if loc.Bedrooms > includedBedrooms {
		price += int64(loc.Bedrooms-includedBedrooms) * bedroomSurcharge
		duration = durationLargeHome
	}
	if loc.Bathrooms > includedBathrooms {
		price += int64(loc.Bathrooms-includedBathrooms) * bathroomSurcharge
	}
	if loc.SquareFootage > includedSquareFeet {
		price += int64((loc.SquareFootage-includedSquareFeet)/squareFeetBlock) * squareFeetSurcharge
		duration = durationLargeFootage
	}
	return price, duration
}

// BasePrice returns the service price adjusted for property size.
func BasePrice(serviceType models.ServiceType, loc models.Location) int64 {
	price, _ := serviceDetails(serviceType, loc)
	return price
}

// EstimateDuration returns the duration label for the property.
func EstimateDuration(loc models.Location) string {
	_, duration := serviceDetails("", loc)
	return duration
}

// ExtrasPrice sums the prices of the selected add-ons.
func ExtrasPrice(extras models.Extras) int64 {
	var total int64
	for _, name := range extras.Selected() {
		total += ExtraPrice(name)
	}
	return total
}

// CalculateQuote prices a draft's service, property and add-ons.
func CalculateQuote(serviceType models.ServiceType, loc models.Location, extras models.Extras) Quote {
	base, duration := serviceDetails(serviceType, loc)
	extrasPrice := ExtrasPrice(extras)
	return Quote{
		BasePrice:         base,
		ExtrasPrice:       extrasPrice,
		TotalPrice:        base + extrasPrice,
		EstimatedDuration: duration,
	}
}

// applyQuote writes the derived price fields onto the draft.
func applyQuote(d *models.BookingDraft) {
	q := CalculateQuote(d.ServiceType, d.Location, d.Extras)
	d.BasePrice = q.BasePrice
	d.ExtrasPrice = q.ExtrasPrice
	d.TotalPrice = q.TotalPrice
	d.EstimatedDuration = q.EstimatedDuration
}
