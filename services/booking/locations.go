package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"madeasy/models"
)

// ErrGeocoderUnavailable is returned when no geocoding key is configured.
var ErrGeocoderUnavailable = errors.New("geocoding is not configured")

// AddressSuggestion is one autocomplete candidate for the location step.
type AddressSuggestion struct {
	Address     string             `json:"address"`
	City        string             `json:"city"`
	Coordinates models.Coordinates `json:"coordinates"`
}

// LocationSuggester proposes addresses for a partially typed query.
type LocationSuggester interface {
	Suggest(ctx context.Context, query string) ([]AddressSuggestion, error)
}

// Geocoder resolves a free-form address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*AddressSuggestion, error)
}

const minSuggestQueryLen = 3

var nairobiNeighbourhoods = []string{
	"Westlands", "Kilimani", "Karen", "Lavington", "Kileleshwa", "Parklands",
}

// StaticSuggester matches queries against a fixed list of Nairobi neighbourhoods.
type StaticSuggester struct{}

func (StaticSuggester) Suggest(_ context.Context, query string) ([]AddressSuggestion, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < minSuggestQueryLen {
		return []AddressSuggestion{}, nil
	}
	out := []AddressSuggestion{}
	for _, n := range nairobiNeighbourhoods {
		address := n + ", " + models.DefaultCity
		if strings.Contains(strings.ToLower(address), q) {
			out = append(out, AddressSuggestion{Address: address, City: models.DefaultCity})
		}
	}
	return out, nil
}

// SelectSuggestion is the location action dispatched when a suggestion is picked.
func SelectSuggestion(s AddressSuggestion) SetLocation {
	address := s.Address
	city := s.City
	if city == "" {
		city = models.DefaultCity
	}
	a := SetLocation{Address: &address, City: &city}
	if s.Coordinates.Lat != nil && s.Coordinates.Lng != nil {
		coords := s.Coordinates
		a.Coordinates = &coords
	}
	return a
}

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocoder calls the Google Geocoding API.
type GoogleGeocoder struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		APIKey:  apiKey,
		BaseURL: googleGeocodeURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode returns the best match for address, or nil when Google found nothing.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (*AddressSuggestion, error) {
	if g.APIKey == "" {
		return nil, ErrGeocoderUnavailable
	}
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", g.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request failed: status %d", resp.StatusCode)
	}
	var data geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(data.Results) == 0 {
		return nil, nil
	}

	r := data.Results[0]
	lat, lng := r.Geometry.Location.Lat, r.Geometry.Location.Lng
	s := &AddressSuggestion{
		Address:     r.FormattedAddress,
		City:        models.DefaultCity,
		Coordinates: models.Coordinates{Lat: &lat, Lng: &lng},
	}
	for _, c := range r.AddressComponents {
		for _, t := range c.Types {
			if t == "locality" {
				s.City = c.LongName
			}
		}
	}
	return s, nil
}
