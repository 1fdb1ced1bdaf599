package kenyaloc

import "strings"

// Source records which lookup produced a Resolution.
type Source string

const (
	SourceLabel   Source = "label"   // BestMatchTown
	SourceNearest Source = "nearest" // NearestTown fallback
)

// Resolution is the outcome of ResolveLabelOrNearest. Score is set for label
// matches, DistanceKm for nearest-town fallbacks.
type Resolution struct {
	County     string  `json:"county"`
	Town       Town    `json:"town"`
	Source     Source  `json:"source"`
	Score      int     `json:"score,omitempty"`
	DistanceKm float64 `json:"distance_km,omitempty"`
}

// Label returns the canonical "Town, County" form.
func (r Resolution) Label() string {
	return r.Town.Name + ", " + r.County
}

// CoerceLocationToTownCounty rewrites a free-text location to the canonical
// "Town, County" form when it resolves, and otherwise returns the input
// trimmed.
func (idx *Index) CoerceLocationToTownCounty(raw string) string {
	if m, ok := idx.BestMatchTown(raw); ok {
		return m.Label()
	}
	return strings.TrimSpace(raw)
}

// ResolveLabelOrNearest resolves label with BestMatchTown and, only when that
// misses and origin is non-nil, falls back to the town nearest origin.
func (idx *Index) ResolveLabelOrNearest(label string, origin *Point) (Resolution, bool) {
	if m, ok := idx.BestMatchTown(label); ok {
		return Resolution{County: m.County, Town: m.Town, Source: SourceLabel, Score: m.Score}, true
	}
	if origin == nil {
		return Resolution{}, false
	}
	n, ok := idx.NearestTown(*origin)
	if !ok {
		return Resolution{}, false
	}
	return Resolution{County: n.County, Town: n.Town, Source: SourceNearest, DistanceKm: n.DistanceKm}, true
}
