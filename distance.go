package kenyaloc

import (
	"github.com/golang/geo/s2"
	"github.com/umahmood/haversine"
)

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Valid reports whether p is a finite coordinate with lat in [-90, 90] and
// lon in [-180, 180].
func (p Point) Valid() bool {
	return s2.LatLngFromDegrees(p.Lat, p.Lon).IsValid()
}

// KmBetween returns the great-circle distance between a and b in kilometres.
func KmBetween(a, b Point) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lon},
		haversine.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return km
}
