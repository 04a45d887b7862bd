package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Wizard session endpoints
	StartSession   gin.HandlerFunc
	GetSession     gin.HandlerFunc
	DispatchAction gin.HandlerFunc
	ValidateStep   gin.HandlerFunc
	SubmitBooking  gin.HandlerFunc
	ResetSession   gin.HandlerFunc
	CancelSession  gin.HandlerFunc

	// Catalogue and helper endpoints
	GetCatalogue       gin.HandlerFunc
	QuotePrice         gin.HandlerFunc
	GetScheduleOptions gin.HandlerFunc
	SuggestLocations   gin.HandlerFunc
	GeocodeAddress     gin.HandlerFunc

	// Operations
	HealthHandler  gin.HandlerFunc
	MetricsHandler gin.HandlerFunc
}

// NewHandlerBundle wires a BookingHandler and the operational endpoints.
func NewHandlerBundle(bh *BookingHandler, health, metrics gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		StartSession:   bh.StartSession,
		GetSession:     bh.GetSession,
		DispatchAction: bh.DispatchAction,
		ValidateStep:   bh.ValidateStep,
		SubmitBooking:  bh.SubmitBooking,
		ResetSession:   bh.ResetSession,
		CancelSession:  bh.CancelSession,

		GetCatalogue:       bh.GetCatalogue,
		QuotePrice:         bh.QuotePrice,
		GetScheduleOptions: bh.GetScheduleOptions,
		SuggestLocations:   bh.SuggestLocations,
		GeocodeAddress:     bh.GeocodeAddress,

		HealthHandler:  health,
		MetricsHandler: metrics,
	}
}
