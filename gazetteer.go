package kenyaloc

import (
	"slices"

	geohash "github.com/TomiHiltunen/geohash-golang"
)

// Town is a named place with coordinates and optional alternate spellings.
type Town struct {
	Name    string   `json:"name" yaml:"name"`
	Lat     float64  `json:"lat" yaml:"lat"`
	Lon     float64  `json:"lon" yaml:"lon"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Point returns the town's coordinates.
func (t Town) Point() Point {
	return Point{Lat: t.Lat, Lon: t.Lon}
}

// Geohash encodes the town's coordinates at the given precision
// (1-12 characters; 6 is roughly a 1.2km cell).
func (t Town) Geohash(precision int) string {
	if precision < 1 {
		precision = 1
	}
	if precision > 12 {
		precision = 12
	}
	return geohash.EncodeWithPrecision(t.Lat, t.Lon, precision)
}

// PointFromGeohash decodes a geohash to the centre of its cell.
func PointFromGeohash(hash string) (Point, bool) {
	if hash == "" {
		return Point{}, false
	}
	for _, r := range hash {
		if !isGeohashRune(r) {
			return Point{}, false
		}
	}
	center := geohash.Decode(hash).Center()
	return Point{Lat: center.Lat(), Lon: center.Lng()}, true
}

func isGeohashRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'b' && r <= 'z':
		return r != 'i' && r != 'l' && r != 'o'
	}
	return false
}

func (t Town) clone() Town {
	t.Aliases = slices.Clone(t.Aliases)
	return t
}

// County is a first-level administrative division and its towns, in
// declaration order.
type County struct {
	Name  string `json:"name" yaml:"name"`
	Towns []Town `json:"towns" yaml:"towns"`
}

// Seat returns the county's first-declared town.
func (c County) Seat() (Town, bool) {
	if len(c.Towns) == 0 {
		return Town{}, false
	}
	return c.Towns[0], true
}

func (c County) clone() County {
	towns := make([]Town, len(c.Towns))
	for i, t := range c.Towns {
		towns[i] = t.clone()
	}
	c.Towns = towns
	return c
}

// Gazetteer is the ordered list of counties. Declaration order is the
// tie-break for every "first match wins" lookup.
type Gazetteer []County

// TownCount returns the number of towns across all counties.
func (g Gazetteer) TownCount() int {
	n := 0
	for _, c := range g {
		n += len(c.Towns)
	}
	return n
}

func (g Gazetteer) clone() Gazetteer {
	out := make(Gazetteer, len(g))
	for i, c := range g {
		out[i] = c.clone()
	}
	return out
}
