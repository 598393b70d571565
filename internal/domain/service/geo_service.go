package service

import "tiffin/internal/domain/entity"

// DistanceCalculator measures how far apart two points are.
type DistanceCalculator interface {
	// DistanceKm returns the great-circle distance in kilometres.
	DistanceKm(from, to entity.Coordinates) float64
}
