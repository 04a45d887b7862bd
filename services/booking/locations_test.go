package booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madeasy/models"
)

func TestStaticSuggester(t *testing.T) {
	ctx := context.Background()
	var s StaticSuggester

	got, err := s.Suggest(ctx, "ki")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.Suggest(ctx, "KIL")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Kilimani, Nairobi", got[0].Address)
	assert.Equal(t, "Kileleshwa, Nairobi", got[1].Address)

	got, err = s.Suggest(ctx, "mombasa")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectSuggestion(t *testing.T) {
	d := models.NewBookingDraft()
	d.Location.City = "Kisumu"

	d = Reduce(d, SelectSuggestion(AddressSuggestion{Address: "Karen, Nairobi"}))
	assert.Equal(t, "Karen, Nairobi", d.Location.Address)
	assert.Equal(t, "Nairobi", d.Location.City)
	assert.Nil(t, d.Location.Coordinates.Lat)
}

func TestGoogleGeocoder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Westlands", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[{
			"formatted_address":"Westlands, Nairobi, Kenya",
			"address_components":[{"long_name":"Nairobi","types":["locality","political"]}],
			"geometry":{"location":{"lat":-1.2676,"lng":36.8108}}}]}`))
	}))
	defer srv.Close()

	g := NewGoogleGeocoder("test-key")
	g.BaseURL = srv.URL

	got, err := g.Geocode(context.Background(), "Westlands")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Westlands, Nairobi, Kenya", got.Address)
	assert.Equal(t, "Nairobi", got.City)
	assert.InDelta(t, -1.2676, *got.Coordinates.Lat, 1e-9)
	assert.InDelta(t, 36.8108, *got.Coordinates.Lng, 1e-9)
}

func TestGoogleGeocoder_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	g := NewGoogleGeocoder("k")
	g.BaseURL = srv.URL
	got, err := g.Geocode(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGoogleGeocoder_RequiresKey(t *testing.T) {
	_, err := NewGoogleGeocoder("").Geocode(context.Background(), "Karen")
	assert.ErrorIs(t, err, ErrGeocoderUnavailable)
}
