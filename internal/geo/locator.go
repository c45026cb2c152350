// Package geo defines the geolocation collaborator and coordinate helpers.
package geo

import (
	"context"
	"errors"
	"math/rand"

	"github.com/oceanguardio/oceanguard/internal/domain"
)

// Locate failure modes surfaced to the user as notifications.
var (
	ErrPermissionDenied = errors.New("geo: permission denied")
	ErrUnavailable      = errors.New("geo: position unavailable")
)

// Locator asynchronously yields the user's position or fails with a
// permission/unavailable error. The core consumes the result to pre-fill a
// location field and degrades to the regional center otherwise.
type Locator interface {
	Locate(ctx context.Context) (domain.Geo, error)
}

// FixedLocator always yields the same position. The production binary uses
// it with the regional center; tests use it for success paths.
type FixedLocator struct {
	Position domain.Geo
}

func (l *FixedLocator) Locate(_ context.Context) (domain.Geo, error) {
	return l.Position, nil
}

// FailingLocator always fails with the configured error.
type FailingLocator struct {
	Err error
}

func (l *FailingLocator) Locate(_ context.Context) (domain.Geo, error) {
	return domain.Geo{}, l.Err
}

// Jitter offsets a point by up to ±spread degrees on each axis, used by
// the simulator to scatter synthetic reports around the regional center.
func Jitter(rng *rand.Rand, center domain.Geo, spread float64) domain.Geo {
	return domain.Geo{
		Lat: center.Lat + (rng.Float64()-0.5)*2*spread,
		Lon: center.Lon + (rng.Float64()-0.5)*2*spread,
	}
}
