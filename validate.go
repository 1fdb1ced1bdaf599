package kenyaloc

import (
	"errors"
	"fmt"
	"math"
)

// ValidationError describes one problem found in a gazetteer.
type ValidationError struct {
	Path    string // e.g. "counties[3].towns[1]"
	Problem string
}

func (e *ValidationError) Error() string {
	return e.Path + ": " + e.Problem
}

// keyOwner remembers which town first claimed a normalized key.
type keyOwner struct {
	path  string
	label string
}

// Validate checks gazetteer data for authoring defects: empty names,
// coordinates out of range, counties without towns, duplicate counties and
// keys that two different towns normalize to. Lookups never fail at runtime,
// so this is the place such problems are caught. All problems are returned
// together, joined with errors.Join; each is a *ValidationError.
func Validate(g Gazetteer) error {
	var errs []error
	report := func(path, format string, args ...any) {
		errs = append(errs, &ValidationError{Path: path, Problem: fmt.Sprintf(format, args...)})
	}

	if len(g) == 0 {
		return ErrEmptyGazetteer
	}

	counties := make(map[string]string)
	names := make(map[string]keyOwner)
	aliases := make(map[string]keyOwner)
	labels := make(map[string]keyOwner)

	claim := func(keys map[string]keyOwner, kind, key, path, label string) {
		if key == "" {
			return
		}
		if prev, ok := keys[key]; ok && prev.label != label {
			report(path, "%s %q collides with %s (%s)", kind, key, prev.label, prev.path)
			return
		}
		keys[key] = keyOwner{path: path, label: label}
	}

	for ci, county := range g {
		cpath := fmt.Sprintf("counties[%d]", ci)
		ckey := Normalize(county.Name)
		switch {
		case ckey == "":
			report(cpath, "county name is empty")
		case counties[ckey] != "":
			report(cpath, "county %q duplicates %s", county.Name, counties[ckey])
		default:
			counties[ckey] = cpath
		}
		if len(county.Towns) == 0 {
			report(cpath, "county %q has no towns", county.Name)
		}

		for ti, town := range county.Towns {
			tpath := fmt.Sprintf("%s.towns[%d]", cpath, ti)
			label := town.Name + ", " + county.Name
			tkey := Normalize(town.Name)
			if tkey == "" {
				report(tpath, "town name is empty")
			}
			if !validCoordinate(town.Lat, town.Lon) {
				report(tpath, "coordinates (%v, %v) out of range", town.Lat, town.Lon)
			}
			claim(names, "town name", tkey, tpath, label)
			claim(labels, "full label", Normalize(label), tpath, label)

			for ai, alias := range town.Aliases {
				apath := fmt.Sprintf("%s.aliases[%d]", tpath, ai)
				akey := Normalize(alias)
				switch {
				case akey == "":
					report(apath, "alias is empty")
				case akey == tkey:
					report(apath, "alias %q repeats the town name", alias)
				default:
					claim(aliases, "alias", akey, apath, label)
				}
			}
		}
	}
	return errors.Join(errs...)
}

func validCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return Point{Lat: lat, Lon: lon}.Valid()
}

// knownTown is a query the built-in gazetteer must resolve.
type knownTown struct {
	query      string
	wantTown   string
	wantCounty string
	wantScore  int
}

// knownTowns exercise every BestMatchTown tier against the built-in data.
var knownTowns = []knownTown{
	{"nairobi", "Nairobi CBD", "Nairobi", ScoreExact},
	{"Westlands, Nairobi", "Westlands", "Nairobi", ScoreExact},
	{"msa", "Mombasa Island", "Mombasa", ScoreExact},
	{"Eldoret", "Eldoret", "Uasin Gishu", ScoreExact},
	{"Thika, Kiambu", "Thika", "Kiambu", ScoreExact},
	{"Kisum", "Kisumu City", "Kisumu", ScorePrefix},
	{"Tharaka", "Chuka", "Tharaka-Nithi", ScoreCountyFallback},
}

// knownPoint is a coordinate whose nearest town is known.
type knownPoint struct {
	lat, lon float64
	wantTown string
}

var knownPoints = []knownPoint{
	{-1.2864, 36.8172, "Nairobi CBD"},
	{0.52, 35.27, "Eldoret"},
	{-0.30, 36.08, "Nakuru"},
	{-4.05, 39.67, "Mombasa Island"},
}

// ValidateKnownTowns runs functional checks against an index built from the
// built-in gazetteer: well-known labels and coordinates must resolve to the
// expected towns. It is meant for the validate command and CI, not for
// custom gazetteers.
func ValidateKnownTowns(idx *Index) error {
	var errs []error
	for _, tc := range knownTowns {
		m, ok := idx.BestMatchTown(tc.query)
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("BestMatchTown(%q): no match, want %s", tc.query, tc.wantTown))
		case m.Town.Name != tc.wantTown || m.County != tc.wantCounty:
			errs = append(errs, fmt.Errorf("BestMatchTown(%q) = %s, want %s, %s", tc.query, m.Label(), tc.wantTown, tc.wantCounty))
		case m.Score != tc.wantScore:
			errs = append(errs, fmt.Errorf("BestMatchTown(%q) score = %d, want %d", tc.query, m.Score, tc.wantScore))
		}
	}
	for _, tc := range knownPoints {
		n, ok := idx.NearestTown(Point{Lat: tc.lat, Lon: tc.lon})
		if !ok || n.Town.Name != tc.wantTown {
			errs = append(errs, fmt.Errorf("NearestTown(%v, %v) = %q, want %q", tc.lat, tc.lon, n.Town.Name, tc.wantTown))
		}
	}
	return errors.Join(errs...)
}
