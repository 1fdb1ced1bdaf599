package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/qwiksale/kenyaloc"
	"github.com/spf13/cobra"
)

// geohashPrecision is used for the geohash printed alongside towns.
const geohashPrecision = 7

// townOutput is the JSON shape printed for a single resolved town.
type townOutput struct {
	Label      string        `json:"label"`
	County     string        `json:"county"`
	Town       kenyaloc.Town `json:"town"`
	Geohash    string        `json:"geohash"`
	Score      *int          `json:"score,omitempty"`
	DistanceKm *float64      `json:"distance_km,omitempty"`
	Source     string        `json:"source,omitempty"`
}

func newTownOutput(county string, t kenyaloc.Town) townOutput {
	return townOutput{
		Label:   t.Name + ", " + county,
		County:  county,
		Town:    t,
		Geohash: t.Geohash(geohashPrecision),
	}
}

func (o townOutput) withScore(score int) townOutput {
	o.Score = &score
	return o
}

func (o townOutput) withDistance(km float64) townOutput {
	km = math.Round(km*1000) / 1000
	o.DistanceKm = &km
	return o
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check gazetteer data for authoring defects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.logger.With().Str("source", a.source()).Logger()
			if err := kenyaloc.Validate(a.gazetteer); err != nil {
				var problems []error
				if joined, ok := err.(interface{ Unwrap() []error }); ok {
					problems = joined.Unwrap()
				} else {
					problems = []error{err}
				}
				for _, p := range problems {
					log.Error().Msg(p.Error())
				}
				return fmt.Errorf("gazetteer invalid: %d problem(s)", len(problems))
			}
			if a.builtin {
				if err := kenyaloc.ValidateKnownTowns(a.index); err != nil {
					return fmt.Errorf("known towns: %w", err)
				}
			}
			log.Info().
				Int("counties", len(a.gazetteer)).
				Int("towns", a.index.TownCount()).
				Msg("gazetteer OK")
			return nil
		},
	}
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <label>",
		Short: "Exact lookup by full label, town name or alias",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := strings.Join(args, " ")
			ref, ok := a.index.FindTown(label)
			if !ok {
				return errNoMatch{label}
			}
			return writeJSON(cmd.OutOrStdout(), newTownOutput(ref.County, ref.Town))
		},
	}
}

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match <label>",
		Short: "Best single match using tiered fuzzy matching",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := strings.Join(args, " ")
			m, ok := a.index.BestMatchTown(label)
			if !ok {
				return errNoMatch{label}
			}
			return writeJSON(cmd.OutOrStdout(), newTownOutput(m.County, m.Town).withScore(m.Score))
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "List every matching town, best first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.SearchLimit
			}
			results := a.index.SearchTowns(strings.Join(args, " "), limit)
			out := make([]townOutput, len(results))
			for i, m := range results {
				out[i] = newTownOutput(m.County, m.Town).withScore(m.Score)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", kenyaloc.DefaultSearchLimit, "maximum number of results")
	return cmd
}

// originFlags holds a coordinate given either as --lat/--lon or --geohash.
type originFlags struct {
	lat, lon float64
	geohash  string
}

func (o *originFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.lat, "lat", math.NaN(), "origin latitude")
	cmd.Flags().Float64Var(&o.lon, "lon", math.NaN(), "origin longitude")
	cmd.Flags().StringVar(&o.geohash, "geohash", "", "origin as a geohash (instead of --lat/--lon)")
}

// point returns the origin, or ok=false when no origin flag was given.
func (o *originFlags) point() (kenyaloc.Point, bool, error) {
	if o.geohash != "" {
		p, ok := kenyaloc.PointFromGeohash(o.geohash)
		if !ok {
			return kenyaloc.Point{}, false, fmt.Errorf("invalid geohash %q", o.geohash)
		}
		return p, true, nil
	}
	if math.IsNaN(o.lat) && math.IsNaN(o.lon) {
		return kenyaloc.Point{}, false, nil
	}
	p := kenyaloc.Point{Lat: o.lat, Lon: o.lon}
	if !p.Valid() {
		return kenyaloc.Point{}, false, fmt.Errorf("invalid coordinates (%v, %v)", o.lat, o.lon)
	}
	return p, true, nil
}

var errOriginRequired = errors.New("an origin is required: pass --lat and --lon, or --geohash")

func newNearestCmd(a *app) *cobra.Command {
	var (
		origin originFlags
		county string
	)
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Town nearest to a coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok, err := origin.point()
			if err != nil {
				return err
			}
			if !ok {
				return errOriginRequired
			}
			var opts []kenyaloc.NearestOption
			if cmd.Flags().Changed("county") {
				opts = append(opts, kenyaloc.WithinCounty(county))
			}
			n, ok := a.index.NearestTown(p, opts...)
			if !ok {
				return errNoMatch{fmt.Sprintf("%v,%v", p.Lat, p.Lon)}
			}
			return writeJSON(cmd.OutOrStdout(), newTownOutput(n.County, n.Town).withDistance(n.DistanceKm))
		},
	}
	origin.register(cmd)
	cmd.Flags().StringVar(&county, "county", "", "only consider towns in this county")
	return cmd
}

func newWithinCmd(a *app) *cobra.Command {
	var (
		origin originFlags
		radius float64
	)
	cmd := &cobra.Command{
		Use:   "within",
		Short: "Towns within a radius of a coordinate, nearest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok, err := origin.point()
			if err != nil {
				return err
			}
			if !ok {
				return errOriginRequired
			}
			results := a.index.TownsWithin(p, radius)
			out := make([]townOutput, len(results))
			for i, n := range results {
				out[i] = newTownOutput(n.County, n.Town).withDistance(n.DistanceKm)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	origin.register(cmd)
	cmd.Flags().Float64Var(&radius, "radius", 10, "radius in kilometres")
	return cmd
}

func newCoerceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "coerce <label>",
		Short: "Rewrite a label to \"Town, County\" when it resolves",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.index.CoerceLocationToTownCounty(strings.Join(args, " ")))
			return err
		},
	}
}

func newResolveCmd(a *app) *cobra.Command {
	var origin originFlags
	cmd := &cobra.Command{
		Use:   "resolve <label>",
		Short: "Match a label, falling back to the town nearest an origin",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			label := strings.Join(args, " ")
			p, ok, err := origin.point()
			if err != nil {
				return err
			}
			var originPtr *kenyaloc.Point
			if ok {
				originPtr = &p
			}
			r, ok := a.index.ResolveLabelOrNearest(label, originPtr)
			if !ok {
				return errNoMatch{label}
			}
			out := newTownOutput(r.County, r.Town)
			out.Source = string(r.Source)
			if r.Source == kenyaloc.SourceLabel {
				out = out.withScore(r.Score)
			} else {
				out = out.withDistance(r.DistanceKm)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	origin.register(cmd)
	return cmd
}
