// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"math"

	domainerrors "clientaccount/internal/domain/errors"
	"clientaccount/internal/domain/kernel"

	"github.com/paulmach/orb"
)

const (
	maxLatitude  = 90
	maxLongitude = 180
)

// Geo is a value object holding a validated latitude/longitude pair.
type Geo struct {
	point kernel.ValueObject[orb.Point]
}

// NewGeo validates latitude first, then longitude. Bounds are inclusive.
func NewGeo(latitude, longitude float64) (Geo, error) {
	if math.IsNaN(latitude) || latitude > maxLatitude || latitude < -maxLatitude {
		return Geo{}, domainerrors.NewInvalidLatitudeError(latitude)
	}

	if math.IsNaN(longitude) || longitude > maxLongitude || longitude < -maxLongitude {
		return Geo{}, domainerrors.NewInvalidLongitudeError(longitude)
	}

	point, err := kernel.NewValueObject(orb.Point{longitude, latitude})
	if err != nil {
		return Geo{}, err
	}

	return Geo{point: point}, nil
}

// Latitude returns the latitude in degrees.
func (g Geo) Latitude() float64 {
	return g.point.Value().Lat()
}

// Longitude returns the longitude in degrees.
func (g Geo) Longitude() float64 {
	return g.point.Value().Lon()
}

// Point returns the coordinates as an orb.Point ([lon, lat]).
func (g Geo) Point() orb.Point {
	return g.point.Value()
}

// Equals reports whether other is a Geo with the same coordinates.
func (g Geo) Equals(other any) bool {
	switch o := other.(type) {
	case Geo:
		return g.point.Equals(o.point)
	case *Geo:
		return o != nil && g.point.Equals(o.point)
	default:
		return false
	}
}
