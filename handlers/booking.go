package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"madeasy/services/booking"
	"madeasy/utils"
)

// BookingHandler serves the booking wizard endpoints.
type BookingHandler struct {
	WizardSvc booking.WizardService
	Suggester booking.LocationSuggester
	Geocoder  booking.Geocoder
	Currency  string
	Now       func() time.Time
}

func NewBookingHandler(svc booking.WizardService, suggester booking.LocationSuggester, geocoder booking.Geocoder, currency string) *BookingHandler {
	return &BookingHandler{
		WizardSvc: svc,
		Suggester: suggester,
		Geocoder:  geocoder,
		Currency:  currency,
		Now:       time.Now,
	}
}

// writeServiceError maps wizard service errors onto HTTP statuses.
func writeServiceError(c *gin.Context, op string, err error) {
	var validation *booking.ValidationError
	var wizardErr *booking.WizardError

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, booking.ErrSubmissionInFlight):
		utils.JSONError(c, http.StatusConflict, "booking submission already in progress", "")
	case errors.Is(err, booking.ErrAlreadySubmitted):
		utils.JSONError(c, http.StatusConflict, "booking already submitted", "")
	case errors.As(err, &validation):
		utils.JSONFieldErrors(c, http.StatusUnprocessableEntity, "booking is incomplete", validation.Errors)
	case errors.As(err, &wizardErr) && wizardErr.Code == booking.CodeInvalidAction:
		utils.JSONError(c, http.StatusBadRequest, "invalid request", wizardErr.Message)
	case errors.As(err, &wizardErr) && wizardErr.Code == booking.CodeSubmission:
		c.JSON(http.StatusBadGateway, utils.ErrorResponse{
			Message: booking.SubmitErrorMessage,
			Errors:  map[string]string{"submit": booking.SubmitErrorMessage},
		})
	default:
		getLogger(c).Error(op+": unexpected error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process booking request", "")
	}
}

// StartSession handles POST /api/booking/session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	resp, err := h.WizardSvc.StartSession(c.Request.Context())
	if err != nil {
		writeServiceError(c, "StartSession", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	resp, err := h.WizardSvc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DispatchAction handles POST /api/booking/session/:sessionID/actions.
func (h *BookingHandler) DispatchAction(c *gin.Context) {
	var msg booking.ActionMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	action, err := booking.DecodeAction(msg)
	if err != nil {
		writeServiceError(c, "DispatchAction", err)
		return
	}

	resp, err := h.WizardSvc.Dispatch(c.Request.Context(), c.Param("sessionID"), action)
	if err != nil {
		writeServiceError(c, "DispatchAction", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ValidateStep handles GET /api/booking/session/:sessionID/validate?step=n.
func (h *BookingHandler) ValidateStep(c *gin.Context) {
	step := 0
	if raw := c.Query("step"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid step", err.Error())
			return
		}
		step = n
	}

	resp, err := h.WizardSvc.Validate(c.Request.Context(), c.Param("sessionID"), step)
	if err != nil {
		writeServiceError(c, "ValidateStep", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitBooking handles POST /api/booking/session/:sessionID/submit.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	userID := c.GetString("userID")
	conf, err := h.WizardSvc.Submit(c.Request.Context(), c.Param("sessionID"), userID)
	if err != nil {
		writeServiceError(c, "SubmitBooking", err)
		return
	}
	c.JSON(http.StatusCreated, conf)
}

// ResetSession handles POST /api/booking/session/:sessionID/reset.
func (h *BookingHandler) ResetSession(c *gin.Context) {
	resp, err := h.WizardSvc.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, "ResetSession", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.WizardSvc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		writeServiceError(c, "CancelSession", err)
		return
	}
	c.Status(http.StatusNoContent)
}
