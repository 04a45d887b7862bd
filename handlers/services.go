package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"madeasy/models"
	"madeasy/services/booking"
	"madeasy/utils"
)

// GetCatalogue handles GET /api/booking/catalogue.
func (h *BookingHandler) GetCatalogue(c *gin.Context) {
	c.JSON(http.StatusOK, booking.NewCatalogue(h.Currency))
}

type quoteRequest struct {
	ServiceType models.ServiceType `json:"serviceType"`
	Location    struct {
		Bedrooms      int `json:"bedrooms"`
		Bathrooms     int `json:"bathrooms"`
		SquareFootage int `json:"squareFootage"`
	} `json:"location"`
	Extras models.Extras `json:"extras"`
}

type quoteResponse struct {
	booking.Quote
	Currency string `json:"currency"`
}

// QuotePrice handles POST /api/booking/quote. It prices a booking without a session.
func (h *BookingHandler) QuotePrice(c *gin.Context) {
	var body quoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if body.ServiceType != "" && !body.ServiceType.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "unknown service type", string(body.ServiceType))
		return
	}

	loc := models.Location{
		Bedrooms:      booking.ClampRoomCount(body.Location.Bedrooms),
		Bathrooms:     booking.ClampRoomCount(body.Location.Bathrooms),
		SquareFootage: max(body.Location.SquareFootage, 0),
	}
	q := booking.CalculateQuote(body.ServiceType, loc, body.Extras)
	c.JSON(http.StatusOK, quoteResponse{Quote: q, Currency: h.Currency})
}

// GetScheduleOptions handles GET /api/booking/schedule/options.
func (h *BookingHandler) GetScheduleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"dates":       booking.AvailableDates(h.Now()),
		"timeSlots":   booking.TimeSlots,
		"frequencies": booking.FrequencyOptions(),
	})
}

// SuggestLocations handles GET /api/booking/locations/suggest?q=.
func (h *BookingHandler) SuggestLocations(c *gin.Context) {
	suggestions, err := h.Suggester.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		getLogger(c).Error("SuggestLocations: failed to fetch suggestions", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch suggestions", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// GeocodeAddress handles GET /api/booking/locations/geocode?address=.
func (h *BookingHandler) GeocodeAddress(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: address", "")
		return
	}
	if h.Geocoder == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "geocoding is not configured", "")
		return
	}

	result, err := h.Geocoder.Geocode(c.Request.Context(), address)
	switch {
	case errors.Is(err, booking.ErrGeocoderUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "geocoding is not configured", "")
		return
	case err != nil:
		getLogger(c).Error("GeocodeAddress: geocoding request failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Geocoding request failed", "")
		return
	case result == nil:
		utils.JSONError(c, http.StatusNotFound, "No location found", "")
		return
	}
	c.JSON(http.StatusOK, result)
}
