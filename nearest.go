package kenyaloc

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// NearestResult is a town found by coordinate search.
type NearestResult struct {
	County     string  `json:"county"`
	Town       Town    `json:"town"`
	DistanceKm float64 `json:"distance_km"`
}

// Label returns the canonical "Town, County" form.
func (n NearestResult) Label() string {
	return n.Town.Name + ", " + n.County
}

type nearestConfig struct {
	county    string
	hasCounty bool
}

// NearestOption configures NearestTown.
type NearestOption func(*nearestConfig)

// WithinCounty restricts NearestTown to the towns of one county. A county
// name that does not resolve yields no result rather than a global search.
func WithinCounty(name string) NearestOption {
	return func(c *nearestConfig) {
		c.county = name
		c.hasCounty = true
	}
}

// NearestTown returns the town closest to origin by great-circle distance.
// Ties keep the town declared first. Invalid coordinates never match.
func (idx *Index) NearestTown(origin Point, opts ...NearestOption) (NearestResult, bool) {
	if !origin.Valid() {
		return NearestResult{}, false
	}
	var cfg nearestConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	candidates := idx.allEntries()
	if cfg.hasCounty {
		ci, ok := idx.countyIndex(cfg.county)
		if !ok {
			return NearestResult{}, false
		}
		candidates = idx.countyEntries[ci]
	}

	best := -1
	bestDist := math.Inf(1)
	for _, ei := range candidates {
		d := KmBetween(origin, idx.entries[ei].ref.Town.Point())
		if d < bestDist {
			best, bestDist = ei, d
		}
	}
	if best < 0 {
		return NearestResult{}, false
	}
	return idx.entries[best].nearest(bestDist), true
}

func (e townEntry) nearest(km float64) NearestResult {
	return NearestResult{County: e.ref.County, Town: e.ref.Town, DistanceKm: km}
}

func (idx *Index) allEntries() []int {
	all := make([]int, len(idx.entries))
	for i := range all {
		all[i] = i
	}
	return all
}

// earthRadiusKm matches the radius haversine.Distance uses.
const earthRadiusKm = 6371

// spatialTown is a town stored in the R-tree.
type spatialTown struct {
	rect  rtreego.Rect
	entry int
}

func (s *spatialTown) Bounds() rtreego.Rect {
	return s.rect
}

// buildSpatialIndex stores every town with valid coordinates as a tiny
// rectangle keyed by (lon, lat).
func (idx *Index) buildSpatialIndex() *rtreego.Rtree {
	rt := rtreego.NewTree(2, 25, 50)
	for i, e := range idx.entries {
		if !e.ref.Town.Point().Valid() {
			continue
		}
		p := rtreego.Point{e.ref.Town.Lon, e.ref.Town.Lat}
		rect, err := rtreego.NewRect(p, []float64{0.0001, 0.0001})
		if err != nil {
			continue
		}
		rt.Insert(&spatialTown{rect: rect, entry: i})
	}
	return rt
}

// TownsWithin returns every town within radiusKm of origin, nearest first;
// equal distances keep gazetteer order.
func (idx *Index) TownsWithin(origin Point, radiusKm float64) []NearestResult {
	if !origin.Valid() || !(radiusKm > 0) || math.IsInf(radiusKm, 0) {
		return nil
	}

	box, err := rtreego.NewRect(searchBox(origin, radiusKm))
	if err != nil {
		return nil
	}

	type hit struct {
		entry int
		km    float64
	}
	var hits []hit
	for _, s := range idx.spatial.SearchIntersect(box) {
		st := s.(*spatialTown)
		km := KmBetween(origin, idx.entries[st.entry].ref.Town.Point())
		if km <= radiusKm {
			hits = append(hits, hit{entry: st.entry, km: km})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].km != hits[j].km {
			return hits[i].km < hits[j].km
		}
		return hits[i].entry < hits[j].entry
	})

	out := make([]NearestResult, len(hits))
	for i, h := range hits {
		out[i] = idx.entries[h.entry].nearest(h.km)
	}
	return out
}

// searchBox returns the (lon, lat) corner and side lengths of the smallest
// degree box holding the spherical cap of radiusKm around origin, padded
// slightly so the haversine cut decides borderline towns.
func searchBox(origin Point, radiusKm float64) (rtreego.Point, []float64) {
	const pad = 1e-6
	theta := radiusKm / earthRadiusKm
	lat := origin.Lat * math.Pi / 180

	dLat := theta*180/math.Pi + pad
	dLon := 180.0
	if math.Abs(lat)+theta < math.Pi/2 {
		dLon = math.Asin(math.Sin(theta)/math.Cos(lat))*180/math.Pi + pad
	}
	return rtreego.Point{origin.Lon - dLon, origin.Lat - dLat}, []float64{2 * dLon, 2 * dLat}
}
