package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Region is the bounding area a place search is scoped to. The default
// matches the map screen's initial viewport.
type Region struct {
	CenterLatitude  float64
	CenterLongitude float64
	LatitudeSpan    float64
	LongitudeSpan   float64
}

var DefaultRegion = Region{
	CenterLatitude:  33.4255,
	CenterLongitude: -111.9400,
	LatitudeSpan:    0.05,
	LongitudeSpan:   0.05,
}

// Place is one candidate from a location search.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	Category  string  `json:"category"`
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
}

type PlacesService struct {
	baseURL string
	client  *http.Client
}

// NewPlacesService builds a client for the OpenStreetMap Nominatim search
// endpoint.
func NewPlacesService() *PlacesService {
	return &PlacesService{
		baseURL: "https://nominatim.openstreetmap.org/search",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchPlaces runs a free-text place lookup bounded to the region. An
// empty query returns no candidates without a network call.
func (s *PlacesService) SearchPlaces(query string, region Region) ([]Place, error) {
	if query == "" {
		return []Place{}, nil
	}

	base, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to build place search URL: %w", err)
	}

	left := region.CenterLongitude - region.LongitudeSpan/2
	right := region.CenterLongitude + region.LongitudeSpan/2
	top := region.CenterLatitude + region.LatitudeSpan/2
	bottom := region.CenterLatitude - region.LatitudeSpan/2

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("viewbox", fmt.Sprintf("%f,%f,%f,%f", left, top, right, bottom))
	params.Set("bounded", "1")
	params.Set("limit", "10")
	base.RawQuery = params.Encode()

	req, err := http.NewRequest(http.MethodGet, base.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create place search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "meal-planner-recipe-finder")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call place search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read place search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place search API error %d: %s", resp.StatusCode, string(body))
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse place search JSON: %w", err)
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		name := r.Name
		if name == "" {
			name = r.DisplayName
		}
		places = append(places, Place{
			Name:      name,
			Latitude:  lat,
			Longitude: lon,
			Address:   r.DisplayName,
			Category:  r.Type,
		})
	}
	return places, nil
}
