package kenyaloc

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Match scores. Lower is better; each tier has a fixed score.
const (
	ScoreExact          = 0 // full label, town name or alias
	ScoreCounty         = 1 // town inside the county named after the comma
	ScorePrefix         = 2 // town name or alias starts with the query
	ScoreSubstring      = 3 // town name contains the query
	ScoreCountyFallback = 4 // query names a county; its seat is returned
	ScoreTypo           = 5 // within the configured edit distance
)

// DefaultSearchLimit is the conventional result limit for SearchTowns.
const DefaultSearchLimit = 20

// minTypoQueryLen is the shortest query (in runes) the typo tier considers.
const minTypoQueryLen = 3

// MatchResult is a town matched by BestMatchTown or SearchTowns.
type MatchResult struct {
	County string `json:"county"`
	Town   Town   `json:"town"`
	Score  int    `json:"score"`
}

// Label returns the canonical "Town, County" form.
func (m MatchResult) Label() string {
	return m.Town.Name + ", " + m.County
}

func (e townEntry) result(score int) MatchResult {
	return MatchResult{County: e.ref.County, Town: e.ref.Town, Score: score}
}

// hasPrefix reports whether the town name or any alias starts with q.
func (e townEntry) hasPrefix(q string) bool {
	if strings.HasPrefix(e.name, q) {
		return true
	}
	for _, a := range e.aliases {
		if strings.HasPrefix(a, q) {
			return true
		}
	}
	return false
}

// splitQuery splits a normalized query into its town part and optional
// county qualifier: "westlands, nairobi" -> ("westlands", "nairobi").
// Anything after a second comma is ignored.
func splitQuery(q string) (rawTown, rawCounty string) {
	parts := strings.Split(q, ",")
	rawTown = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		rawCounty = strings.TrimSpace(parts[1])
	}
	if !hasWordRune(rawTown) {
		rawTown = ""
	}
	return rawTown, rawCounty
}

// BestMatchTown resolves a free-text label to a single town, trying tiers in
// order and returning the first hit:
//
//   - ScoreExact: FindTown.
//   - ScoreCounty: "town, county" where county resolves; a town of that
//     county whose name starts with or contains the town part, or whose alias
//     starts with it.
//   - ScorePrefix: any town whose name or alias starts with the town part.
//   - ScoreSubstring: any town whose name contains the town part.
//   - ScoreCountyFallback: a county whose name contains the whole query; its
//     seat is returned.
//   - ScoreTypo: only with WithTypoTolerance.
//
// Within a tier the first town in gazetteer order wins. A county qualifier
// that does not resolve is ignored and matching continues on the town part.
func (idx *Index) BestMatchTown(label string) (MatchResult, bool) {
	q := Normalize(label)
	if q == "" {
		return MatchResult{}, false
	}
	if ref, ok := idx.findNormalized(q); ok {
		return MatchResult{County: ref.County, Town: ref.Town, Score: ScoreExact}, true
	}

	rawTown, rawCounty := splitQuery(q)
	if rawTown != "" {
		if m, ok := idx.matchInCounty(rawTown, rawCounty); ok {
			return m, true
		}
		for _, e := range idx.entries {
			if e.hasPrefix(rawTown) {
				return e.result(ScorePrefix), true
			}
		}
		for _, e := range idx.entries {
			if strings.Contains(e.name, rawTown) {
				return e.result(ScoreSubstring), true
			}
		}
	}

	if hasWordRune(q) {
		for ci, countyKey := range idx.countyNames {
			if !strings.Contains(countyKey, q) {
				continue
			}
			if seat, ok := idx.gazetteer[ci].Seat(); ok {
				return MatchResult{County: idx.gazetteer[ci].Name, Town: seat, Score: ScoreCountyFallback}, true
			}
		}
	}

	if rawTown != "" && idx.config.TypoDistance > 0 {
		if m, ok := idx.matchTypo(rawTown); ok {
			return m, true
		}
	}
	return MatchResult{}, false
}

func (idx *Index) matchInCounty(rawTown, rawCounty string) (MatchResult, bool) {
	if rawCounty == "" {
		return MatchResult{}, false
	}
	ci, ok := idx.countyByNormalized(rawCounty)
	if !ok {
		return MatchResult{}, false
	}
	for _, ei := range idx.countyEntries[ci] {
		e := idx.entries[ei]
		if strings.Contains(e.name, rawTown) || e.hasPrefix(rawTown) {
			return e.result(ScoreCounty), true
		}
	}
	return MatchResult{}, false
}

// matchTypo returns the first town whose name or alias is within the
// configured edit distance of q.
func (idx *Index) matchTypo(q string) (MatchResult, bool) {
	if utf8.RuneCountInString(q) < minTypoQueryLen {
		return MatchResult{}, false
	}
	for _, e := range idx.entries {
		if withinEditDistance(q, e.name, idx.config.TypoDistance) {
			return e.result(ScoreTypo), true
		}
		for _, a := range e.aliases {
			if withinEditDistance(q, a, idx.config.TypoDistance) {
				return e.result(ScoreTypo), true
			}
		}
	}
	return MatchResult{}, false
}

// withinEditDistance reports whether the Levenshtein distance between two
// normalized strings is at most maxDist.
func withinEditDistance(a, b string, maxDist int) bool {
	if maxDist <= 0 {
		return a == b
	}
	// Cheap length check before the quadratic distance computation.
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la-lb > maxDist || lb-la > maxDist {
		return false
	}
	return levenshtein.ComputeDistance(a, b) <= maxDist
}

// SearchTowns returns every town matching query, best first, at most limit
// results. The exact match (if any) scores ScoreExact; towns whose name or
// alias starts with the query score ScorePrefix; towns whose name contains
// it score ScoreSubstring. Each town appears once. Results are ordered by
// score, then town name; equal pairs keep gazetteer order.
func (idx *Index) SearchTowns(query string, limit int) []MatchResult {
	if limit <= 0 {
		return nil
	}
	q := Normalize(query)
	if q == "" {
		return nil
	}

	type townKey struct{ town, county string }
	seen := make(map[townKey]bool)
	var results []MatchResult

	if ref, ok := idx.findNormalized(q); ok {
		seen[townKey{ref.Town.Name, ref.County}] = true
		results = append(results, MatchResult{County: ref.County, Town: ref.Town, Score: ScoreExact})
	}

	if hasWordRune(q) {
		for _, e := range idx.entries {
			key := townKey{e.ref.Town.Name, e.ref.County}
			if seen[key] {
				continue
			}
			switch {
			case e.hasPrefix(q):
				results = append(results, e.result(ScorePrefix))
			case strings.Contains(e.name, q):
				results = append(results, e.result(ScoreSubstring))
			default:
				continue
			}
			seen[key] = true
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].Town.Name < results[j].Town.Name
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
