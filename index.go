package kenyaloc

import (
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/rs/zerolog"
)

// maxTypoDistance caps the edit distance accepted by the typo tier. Town
// names are short; anything looser matches unrelated places.
const maxTypoDistance = 2

// IndexConfig contains options for BuildIndex.
type IndexConfig struct {
	TypoDistance int            // Max edit distance for the typo tier (0 = disabled)
	Logger       zerolog.Logger // Debug logging of build stats (default: disabled)
}

// Option is a functional option for configuring an Index.
type Option func(*IndexConfig)

// WithTypoTolerance enables the typo tier of BestMatchTown: after every
// other tier misses, a town whose name or alias is within maxDist edits of
// the query matches with ScoreTypo. Values above 2 are capped.
func WithTypoTolerance(maxDist int) Option {
	return func(c *IndexConfig) {
		c.TypoDistance = maxDist
	}
}

// WithLogger sets the logger used while building the index.
func WithLogger(l zerolog.Logger) Option {
	return func(c *IndexConfig) {
		c.Logger = l
	}
}

func defaultIndexConfig() *IndexConfig {
	return &IndexConfig{Logger: zerolog.Nop()}
}

// TownRef is a town together with the name of the county that owns it.
type TownRef struct {
	County string `json:"county"`
	Town   Town   `json:"town"`
}

// Label returns the canonical "Town, County" form.
func (r TownRef) Label() string {
	return r.Town.Name + ", " + r.County
}

// townEntry is a town flattened out of the gazetteer with its normalized
// keys precomputed. Index.entries keeps declaration order.
type townEntry struct {
	ref     TownRef
	county  int      // position of the owning county in the gazetteer
	name    string   // normalized town name
	aliases []string // normalized aliases, empty keys dropped
}

// Index is an immutable lookup structure over a Gazetteer. Build it once with
// BuildIndex and share it; all methods are safe for concurrent use.
type Index struct {
	gazetteer       Gazetteer
	countyNames     []string           // normalized county names, gazetteer order
	countyByName    map[string]int     // normalized county name -> gazetteer position
	townByName      map[string]TownRef // normalized town name
	townByAlias     map[string]TownRef // normalized alias
	townByFullLabel map[string]TownRef // normalized "town, county"
	entries         []townEntry        // every town, gazetteer order
	countyEntries   [][]int            // county position -> indices into entries
	spatial         *rtreego.Rtree     // bounding-box prefilter for TownsWithin
	config          *IndexConfig
}

// BuildIndex derives every lookup map from g in a single pass. The gazetteer
// is copied, so later changes to g do not affect the index.
//
// Keys that collide (two towns normalizing to the same name, alias or full
// label) resolve last-write-wins; Validate reports such collisions.
func BuildIndex(g Gazetteer, opts ...Option) *Index {
	cfg := defaultIndexConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.TypoDistance < 0 {
		cfg.TypoDistance = 0
	}
	if cfg.TypoDistance > maxTypoDistance {
		cfg.TypoDistance = maxTypoDistance
	}

	g = g.clone()
	townCount := g.TownCount()
	idx := &Index{
		gazetteer:       g,
		countyNames:     make([]string, len(g)),
		countyByName:    make(map[string]int, len(g)),
		townByName:      make(map[string]TownRef, townCount),
		townByAlias:     make(map[string]TownRef),
		townByFullLabel: make(map[string]TownRef, townCount),
		entries:         make([]townEntry, 0, townCount),
		countyEntries:   make([][]int, len(g)),
		config:          cfg,
	}

	aliasCount := 0
	for ci, county := range g {
		countyKey := Normalize(county.Name)
		idx.countyNames[ci] = countyKey
		idx.countyByName[countyKey] = ci

		for _, town := range county.Towns {
			ref := TownRef{County: county.Name, Town: town}
			entry := townEntry{
				ref:    ref,
				county: ci,
				name:   Normalize(town.Name),
			}
			idx.townByName[entry.name] = ref
			idx.townByFullLabel[Normalize(town.Name+", "+county.Name)] = ref
			for _, alias := range town.Aliases {
				key := Normalize(alias)
				idx.townByAlias[key] = ref
				if key != "" {
					entry.aliases = append(entry.aliases, key)
				}
				aliasCount++
			}
			idx.countyEntries[ci] = append(idx.countyEntries[ci], len(idx.entries))
			idx.entries = append(idx.entries, entry)
		}
	}
	idx.spatial = idx.buildSpatialIndex()

	cfg.Logger.Debug().
		Int("counties", len(g)).
		Int("towns", townCount).
		Int("aliases", aliasCount).
		Int("typo_distance", cfg.TypoDistance).
		Msg("gazetteer index built")
	return idx
}

// Gazetteer returns a copy of the indexed gazetteer.
func (idx *Index) Gazetteer() Gazetteer {
	return idx.gazetteer.clone()
}

// TownCount returns the number of indexed towns.
func (idx *Index) TownCount() int {
	return len(idx.entries)
}

// defaultIndex holds the shared index over the built-in gazetteer.
var defaultIndex = sync.OnceValue(func() *Index {
	return BuildIndex(Kenya())
})

// Default returns a shared Index over the built-in Kenya gazetteer, building
// it on first call. Callers that need options or custom data should call
// BuildIndex themselves and pass the result around.
func Default() *Index {
	return defaultIndex()
}
