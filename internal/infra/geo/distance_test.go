package geo

import (
	"testing"

	"tiffin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	calc := NewDistanceCalculator()

	campus := entity.Coordinates{Lat: 12.9716, Lng: 77.5946}
	assert.InDelta(t, 0, calc.DistanceKm(campus, campus), 1e-9)

	// Bengaluru to Chennai is roughly 290 km as the crow flies.
	chennai := entity.Coordinates{Lat: 13.0827, Lng: 80.2707}
	assert.InDelta(t, 290, calc.DistanceKm(campus, chennai), 5)

	// Symmetric.
	assert.InDelta(t, calc.DistanceKm(campus, chennai), calc.DistanceKm(chennai, campus), 1e-9)

	// One hundredth of a degree of latitude is about 1.11 km.
	nearby := entity.Coordinates{Lat: 12.9816, Lng: 77.5946}
	assert.InDelta(t, 1.11, calc.DistanceKm(campus, nearby), 0.01)
}
