// Package geo measures distances between delivery points.
package geo

import (
	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/service"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

type haversineCalculator struct{}

// NewDistanceCalculator returns a great-circle distance calculator.
func NewDistanceCalculator() service.DistanceCalculator {
	return haversineCalculator{}
}

// DistanceKm uses the haversine formula on a spherical earth.
func (haversineCalculator) DistanceKm(from, to entity.Coordinates) float64 {
	return orbgeo.DistanceHaversine(toPoint(from), toPoint(to)) / 1000
}

// orb points are (lng, lat).
func toPoint(c entity.Coordinates) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}
