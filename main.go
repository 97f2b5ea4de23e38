// Package main is the entry point for themekit.
package main

import (
	"github.com/nst-sdc/themekit/cmd"
	"github.com/nst-sdc/themekit/config"
	"github.com/nst-sdc/themekit/log"
	"github.com/nst-sdc/themekit/manifest"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go func() {
		if pruned, err := manifest.Default().Prune(); err != nil {
			log.Warnf("manifest prune: %s", err)
		} else if pruned > 0 {
			log.Infof("pruned %d stale manifest entries", pruned)
		}
	}()

	cmd.Execute()
}
