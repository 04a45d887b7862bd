// models/service_type.go
package models

// ServiceType is the kind of cleaning selected on the first wizard step.
type ServiceType string

const (
	ServiceStandard ServiceType = "standard"
	ServiceDeep     ServiceType = "deep"
	ServiceMoveIn   ServiceType = "move-in"
	ServiceMoveOut  ServiceType = "move-out"
	ServiceCustom   ServiceType = "custom"
)

// ServiceTypes lists every selectable service type in display order.
var ServiceTypes = []ServiceType{ServiceStandard, ServiceDeep, ServiceMoveIn, ServiceMoveOut, ServiceCustom}

func (s ServiceType) Valid() bool {
	for _, t := range ServiceTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Frequency is how often the cleaning repeats.
type Frequency string

const (
	FrequencyOnce     Frequency = "once"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

var Frequencies = []Frequency{FrequencyOnce, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly}

func (f Frequency) Valid() bool {
	for _, v := range Frequencies {
		if f == v {
			return true
		}
	}
	return false
}

// PropertyType describes the premises to be cleaned.
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyTownhouse PropertyType = "townhouse"
	PropertyOffice    PropertyType = "office"
)

var PropertyTypes = []PropertyType{PropertyApartment, PropertyHouse, PropertyTownhouse, PropertyOffice}

func (p PropertyType) Valid() bool {
	for _, v := range PropertyTypes {
		if p == v {
			return true
		}
	}
	return false
}

// Extra names an optional add-on service.
type Extra string

const (
	ExtraDeepCleaning    Extra = "deepCleaning"
	ExtraWindowCleaning  Extra = "windowCleaning"
	ExtraLaundry         Extra = "laundry"
	ExtraFridgeCleaning  Extra = "fridgeCleaning"
	ExtraOvenCleaning    Extra = "ovenCleaning"
	ExtraBalconyCleaning Extra = "balconyCleaning"
	ExtraCarpetCleaning  Extra = "carpetCleaning"
)

// AllExtras lists every add-on in display order.
var AllExtras = []Extra{
	ExtraDeepCleaning,
	ExtraWindowCleaning,
	ExtraLaundry,
	ExtraFridgeCleaning,
	ExtraOvenCleaning,
	ExtraBalconyCleaning,
	ExtraCarpetCleaning,
}

func (e Extra) Valid() bool {
	for _, v := range AllExtras {
		if e == v {
			return true
		}
	}
	return false
}
