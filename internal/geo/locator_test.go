package geo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oceanguardio/oceanguard/internal/domain"
)

func TestJitter_StaysWithinSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	center := domain.Geo{Lat: 13.0827, Lon: 80.2707}

	for i := 0; i < 200; i++ {
		p := Jitter(rng, center, 0.25)
		assert.InDelta(t, center.Lat, p.Lat, 0.25)
		assert.InDelta(t, center.Lon, p.Lon, 0.25)
	}
}

func TestJitter_Deterministic(t *testing.T) {
	center := domain.Geo{Lat: 13.0827, Lon: 80.2707}
	a := Jitter(rand.New(rand.NewSource(4)), center, 0.25)
	b := Jitter(rand.New(rand.NewSource(4)), center, 0.25)
	assert.Equal(t, a, b)
}
