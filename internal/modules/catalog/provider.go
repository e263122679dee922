package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"parkease/internal/domain"
)

// httpProvider queries a hosted parking API. Results are mapped to
// catalog spots with source "api" and the provider's id in external_id.
type httpProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPProvider(baseURL, apiKey string) Provider {
	return &httpProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type providerSpot struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	Price          float64  `json:"price"`
	AvailableSpots int      `json:"availableSpots"`
	Distance       *float64 `json:"distance"`
	Rating         *float64 `json:"rating"`
	Coordinates    struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"coordinates"`
}

func (p *httpProvider) Search(ctx context.Context, location, radius string) ([]domain.ParkingSpot, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("location", location)
	q.Set("radius", radius)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", p.apiKey)
	req.Header.Set("X-RapidAPI-Host", u.Host)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parking provider returned status %d", resp.StatusCode)
	}

	var raw []providerSpot
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	spots := make([]domain.ParkingSpot, 0, len(raw))
	for _, ps := range raw {
		externalID := ps.ID
		spots = append(spots, domain.ParkingSpot{
			Name:           ps.Name,
			Address:        ps.Address,
			City:           ps.City,
			Price:          ps.Price,
			AvailableSpots: ps.AvailableSpots,
			Distance:       ps.Distance,
			Rating:         ps.Rating,
			Latitude:       ps.Coordinates.Latitude,
			Longitude:      ps.Coordinates.Longitude,
			Source:         domain.SpotSourceAPI,
			ExternalID:     &externalID,
		})
	}
	return spots, nil
}
