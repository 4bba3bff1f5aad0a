package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
)

// GoogleGeocoder resolves addresses through the Google Geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

func (g *GoogleGeocoder) Locate(ctx context.Context, address, postCode, city string) (domain.Position, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: fmt.Sprintf("%s, %s %s", address, postCode, city),
	})
	if err != nil {
		return domain.UnsetPosition(), fmt.Errorf("geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return domain.UnsetPosition(), fmt.Errorf("geocode %q: no results", address)
	}

	loc := results[0].Geometry.Location
	return domain.NewPosition(loc.Lat, loc.Lng), nil
}
