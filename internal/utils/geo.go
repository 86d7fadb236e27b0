package utils

import (
	"math"

	"github.com/MKhiriev/go-poster-keeper/models"
)

const (
	// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
	EarthRadiusMeters = 6371008.8

	// RemovalRadiusMeters is how far a removal request may be from the
	// poster it takes down.
	RemovalRadiusMeters = 20.0
)

// DistanceMeters returns the great-circle distance between a and b.
func DistanceMeters(a, b models.Location) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// BoundingBox is a lat/lng rectangle that contains every point within some
// radius of a center. Used to narrow SQL candidates before the exact
// distance check.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// BoundingBoxAround returns a box enclosing the circle of radius meters
// around center. Near the poles the longitude span covers the whole range.
func BoundingBoxAround(center models.Location, meters float64) BoundingBox {
	dLat := meters / EarthRadiusMeters * 180 / math.Pi

	box := BoundingBox{
		MinLat: math.Max(-90, center.Lat-dLat),
		MaxLat: math.Min(90, center.Lat+dLat),
		MinLng: -180,
		MaxLng: 180,
	}

	cosLat := math.Cos(center.Lat * math.Pi / 180)
	if cosLat > 1e-9 {
		dLng := dLat / cosLat
		if dLng < 180 {
			box.MinLng = center.Lng - dLng
			box.MaxLng = center.Lng + dLng
		}
	}

	return box
}

// Nearest returns the index of the location in candidates closest to target
// and within maxMeters, or -1 when none qualifies.
func Nearest(target models.Location, candidates []models.Location, maxMeters float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range candidates {
		d := DistanceMeters(target, c)
		if d <= maxMeters && d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
