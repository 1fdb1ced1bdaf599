package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qwiksale/kenyaloc"
	"github.com/qwiksale/kenyaloc/internal/config"
	"github.com/qwiksale/kenyaloc/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand once the root command's
// pre-run has loaded configuration.
type app struct {
	configFile string
	cfg        *config.Config
	logger     zerolog.Logger
	gazetteer  kenyaloc.Gazetteer
	index      *kenyaloc.Index
	builtin    bool
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}
	v := config.New()

	root := &cobra.Command{
		Use:           "kenyaloc",
		Short:         "Resolve Kenyan town and county labels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			return a.loadIndex()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: ./kenyaloc.yaml)")
	pf.String("gazetteer", "", "YAML gazetteer file (default: built-in Kenya data)")
	pf.Int("typo-distance", 0, "max edit distance for typo matching (0-2, 0 = off)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")

	root.AddCommand(
		newValidateCmd(a),
		newFindCmd(a),
		newMatchCmd(a),
		newSearchCmd(a),
		newNearestCmd(a),
		newWithinCmd(a),
		newCoerceCmd(a),
		newResolveCmd(a),
	)
	return root
}

// loadIndex loads the configured gazetteer and builds the index.
func (a *app) loadIndex() error {
	if a.cfg.Gazetteer == "" {
		a.gazetteer = kenyaloc.Kenya()
		a.builtin = true
	} else {
		g, err := kenyaloc.LoadGazetteerFile(a.cfg.Gazetteer)
		if err != nil {
			return err
		}
		a.gazetteer = g
	}
	a.index = kenyaloc.BuildIndex(a.gazetteer,
		kenyaloc.WithTypoTolerance(a.cfg.TypoDistance),
		kenyaloc.WithLogger(a.logger),
	)
	a.logger.Debug().
		Str("source", a.source()).
		Int("towns", a.index.TownCount()).
		Msg("gazetteer loaded")
	return nil
}

func (a *app) source() string {
	if a.builtin {
		return "builtin"
	}
	return a.cfg.Gazetteer
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// errNoMatch is returned by lookup commands that found nothing, so the
// process exits non-zero.
type errNoMatch struct{ query string }

func (e errNoMatch) Error() string {
	return fmt.Sprintf("no match for %q", e.query)
}
