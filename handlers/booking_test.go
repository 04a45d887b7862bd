package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"madeasy/models"
	"madeasy/services/booking"
	"madeasy/services/storage"
)

type MockBookingCreator struct {
	mock.Mock
}

func (m *MockBookingCreator) CreateBooking(ctx context.Context, req models.BookingRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (*booking.AddressSuggestion, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.AddressSuggestion), args.Error(1)
}

func setupRouter(t *testing.T, creator booking.BookingCreator, geocoder booking.Geocoder) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &booking.DefaultWizardService{
		Persistence: storage.NewMemoryDraftStore(storage.NewCodec("")),
		Creator:     creator,
		Currency:    "KES",
	}
	h := NewBookingHandler(svc, booking.StaticSuggester{}, geocoder, "KES")
	h.Now = func() time.Time { return time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC) }

	r := gin.New()
	g := r.Group("/api/booking")
	g.GET("/catalogue", h.GetCatalogue)
	g.POST("/quote", h.QuotePrice)
	g.GET("/schedule/options", h.GetScheduleOptions)
	g.GET("/locations/suggest", h.SuggestLocations)
	g.GET("/locations/geocode", h.GeocodeAddress)
	g.POST("/session", h.StartSession)
	g.GET("/session/:sessionID", h.GetSession)
	g.DELETE("/session/:sessionID", h.CancelSession)
	g.POST("/session/:sessionID/actions", h.DispatchAction)
	g.GET("/session/:sessionID/validate", h.ValidateStep)
	g.POST("/session/:sessionID/submit", h.SubmitBooking)
	g.POST("/session/:sessionID/reset", h.ResetSession)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func startSession(t *testing.T, r http.Handler) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/booking/session", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func dispatch(t *testing.T, r http.Handler, sessionID, typ string, payload any) models.BookingResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/booking/session/"+sessionID+"/actions", map[string]any{"type": typ, "payload": payload})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func completeSession(t *testing.T, r http.Handler, sessionID string) {
	t.Helper()
	dispatch(t, r, sessionID, "SET_SERVICE_TYPE", map[string]any{"serviceType": "deep"})
	dispatch(t, r, sessionID, "SET_SCHEDULE", map[string]any{"date": "2026-10-16", "time": "08:00 AM"})
	dispatch(t, r, sessionID, "SET_LOCATION", map[string]any{"address": "Karen, Nairobi", "propertyType": "house", "bedrooms": 4, "bathrooms": 3})
	dispatch(t, r, sessionID, "SET_CONTACT_INFO", map[string]any{"firstName": "Baraka", "lastName": "Mwangi", "email": "baraka@example.com", "phone": "0733000000"})
	dispatch(t, r, sessionID, "SET_PAYMENT", map[string]any{"cardNumber": "4111111111111111", "expiryDate": "1230", "cvv": "999", "nameOnCard": "B Mwangi"})
	dispatch(t, r, sessionID, "SET_STEP", map[string]any{"step": 6})
}

func TestBookingHandler_SessionLifecycle(t *testing.T) {
	r := setupRouter(t, booking.LocalBookingCreator{}, nil)
	id := startSession(t, r)

	resp := dispatch(t, r, id, "SET_SERVICE_TYPE", map[string]any{"serviceType": "standard"})
	assert.Equal(t, int64(2000), resp.Draft.TotalPrice)
	assert.True(t, resp.CanProceed)

	resp = dispatch(t, r, id, "SET_EXTRAS", map[string]any{"windowCleaning": true, "laundry": true})
	assert.Equal(t, int64(4500), resp.Draft.ExtrasPrice)
	assert.Equal(t, int64(6500), resp.Draft.TotalPrice)

	resp = dispatch(t, r, id, "SET_STEP", map[string]any{"step": 3})
	assert.Equal(t, "Location", resp.StepTitle)
	assert.InDelta(t, 2.0/7*100, resp.Progress, 1e-9)

	w := doJSON(r, http.MethodGet, "/api/booking/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, resp.Draft, got.Draft)

	w = doJSON(r, http.MethodPost, "/api/booking/session/"+id+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(0), got.Draft.TotalPrice)
	assert.Equal(t, 1, got.Draft.CurrentStep)

	w = doJSON(r, http.MethodDelete, "/api/booking/session/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(r, http.MethodGet, "/api/booking/session/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_DispatchRejectsBadActions(t *testing.T) {
	r := setupRouter(t, booking.LocalBookingCreator{}, nil)
	id := startSession(t, r)

	tests := []struct {
		name string
		body any
	}{
		{"unknown type", map[string]any{"type": "SET_PRICE", "payload": map[string]any{"totalPrice": 1}}},
		{"unknown field", map[string]any{"type": "SET_LOCATION", "payload": map[string]any{"zipCode": "00100"}}},
		{"internal type", map[string]any{"type": "SET_BOOKING_ID", "payload": map[string]any{"BookingID": "x"}}},
		{"not json", "oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/booking/session/"+id+"/actions", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestBookingHandler_UnknownSession(t *testing.T) {
	r := setupRouter(t, booking.LocalBookingCreator{}, nil)
	w := doJSON(r, http.MethodPost, "/api/booking/session/nope/actions", map[string]any{"type": "CALCULATE_TOTAL"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_Validate(t *testing.T) {
	r := setupRouter(t, booking.LocalBookingCreator{}, nil)
	id := startSession(t, r)

	w := doJSON(r, http.MethodGet, "/api/booking/session/"+id+"/validate?step=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var v models.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, 5, v.Step)
	assert.False(t, v.CanProceed)
	assert.Equal(t, "First name is required", v.Errors["firstName"])

	w = doJSON(r, http.MethodGet, "/api/booking/session/"+id+"/validate?step=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(r, http.MethodGet, "/api/booking/session/"+id+"/validate?step=9", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_SubmitIncomplete(t *testing.T) {
	r := setupRouter(t, booking.LocalBookingCreator{}, nil)
	id := startSession(t, r)

	w := doJSON(r, http.MethodPost, "/api/booking/session/"+id+"/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please select a service type")
}

func TestBookingHandler_SubmitSuccess(t *testing.T) {
	r := setupRouter(t, booking.LocalBookingCreator{Now: func() time.Time { return time.UnixMilli(36 * 36) }}, nil)
	id := startSession(t, r)
	completeSession(t, r, id)

	w := doJSON(r, http.MethodPost, "/api/booking/session/"+id+"/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var conf models.BookingConfirmation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conf))
	assert.Equal(t, "BK-100", conf.BookingID)
	assert.Equal(t, models.StepConfirmation, conf.Draft.CurrentStep)
	assert.Equal(t, int64(5900), conf.Draft.TotalPrice)
}

func TestBookingHandler_SubmitUpstreamFailure(t *testing.T) {
	creator := new(MockBookingCreator)
	creator.On("CreateBooking", mock.Anything, mock.Anything).Return("", errors.New("boom")).Once()

	r := setupRouter(t, creator, nil)
	id := startSession(t, r)
	completeSession(t, r, id)

	w := doJSON(r, http.MethodPost, "/api/booking/session/"+id+"/submit", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), booking.SubmitErrorMessage)

	w = doJSON(r, http.MethodGet, "/api/booking/session/"+id, nil)
	var got models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, booking.SubmitErrorMessage, got.Draft.Errors["submit"])
	assert.False(t, got.Draft.IsLoading)
}

func TestBookingHandler_Quote(t *testing.T) {
	r := setupRouter(t, booking.LocalBookingCreator{}, nil)

	w := doJSON(r, http.MethodPost, "/api/booking/quote", map[string]any{
		"serviceType": "deep",
		"location":    map[string]any{"bedrooms": 4, "bathrooms": 3},
		"extras":      map[string]any{"laundry": true},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"basePrice":5900,"extrasPrice":1500,"totalPrice":7400,"estimatedDuration":"3-4 hours","currency":"KES"}`, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/booking/quote", map[string]any{"serviceType": "gardening"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_CatalogueAndSchedule(t *testing.T) {
	r := setupRouter(t, booking.LocalBookingCreator{}, nil)

	w := doJSON(r, http.MethodGet, "/api/booking/catalogue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cat booking.Catalogue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))
	assert.Len(t, cat.Services, 4)
	assert.Equal(t, "KES", cat.Currency)

	w = doJSON(r, http.MethodGet, "/api/booking/schedule/options", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var opts struct {
		Dates     []string `json:"dates"`
		TimeSlots []string `json:"timeSlots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opts))
	assert.Equal(t, "2026-10-16", opts.Dates[0])
	assert.Len(t, opts.TimeSlots, 9)
}

func TestBookingHandler_Locations(t *testing.T) {
	lat, lng := -1.3, 36.7
	geocoder := new(MockGeocoder)
	geocoder.On("Geocode", mock.Anything, "Karen").
		Return(&booking.AddressSuggestion{Address: "Karen, Nairobi, Kenya", City: "Nairobi", Coordinates: models.Coordinates{Lat: &lat, Lng: &lng}}, nil)
	geocoder.On("Geocode", mock.Anything, "Atlantis").Return(nil, nil)

	r := setupRouter(t, booking.LocalBookingCreator{}, geocoder)

	w := doJSON(r, http.MethodGet, "/api/booking/locations/suggest?q=park", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Parklands, Nairobi")

	w = doJSON(r, http.MethodGet, "/api/booking/locations/geocode?address=Karen", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Karen, Nairobi, Kenya")

	w = doJSON(r, http.MethodGet, "/api/booking/locations/geocode?address=Atlantis", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/booking/locations/geocode", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_GeocodeWithoutKey(t *testing.T) {
	r := setupRouter(t, booking.LocalBookingCreator{}, nil)
	w := doJSON(r, http.MethodGet, "/api/booking/locations/geocode?address=Karen", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
