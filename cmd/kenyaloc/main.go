// Command kenyaloc resolves Kenyan location labels and coordinates against
// the gazetteer, and validates gazetteer data files.
//
// Usage:
//
//	kenyaloc match "Westlands, Nairobi"
//	kenyaloc search na --limit 5
//	kenyaloc nearest --lat -1.28 --lon 36.82
//	kenyaloc validate --gazetteer ./towns.yaml
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("kenyaloc failed")
		os.Exit(1)
	}
}
