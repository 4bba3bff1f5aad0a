package geocode

import (
	"context"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
)

// Geocoder resolves a postal address into coordinates. The service treats it
// as an external collaborator: failure to geocode never fails intervention
// creation.
type Geocoder interface {
	Locate(ctx context.Context, address, postCode, city string) (domain.Position, error)
}

// Noop is used when no geocoder credentials are configured; every lookup
// yields the unset position.
type Noop struct{}

func (Noop) Locate(context.Context, string, string, string) (domain.Position, error) {
	return domain.UnsetPosition(), nil
}
