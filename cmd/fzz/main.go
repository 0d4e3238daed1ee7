// Command fzz is an interactive fuzzy finder for lines read from stdin.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/fzz/internal/adapters/driven/config/file"
	"github.com/custodia-labs/fzz/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fzz/internal/adapters/driving/cli"
	"github.com/custodia-labs/fzz/internal/core/ports/driven"
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
	"github.com/custodia-labs/fzz/internal/core/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Ranking: services.NewRanker(),
	})
	cli.SetOptionsFactory(newOptionsService)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fzz: %v\n", err)
		os.Exit(1)
	}
}

// newOptionsService opens the config file unless noConfig is set.
func newOptionsService(noConfig bool) (driving.OptionsService, error) {
	var store driven.ConfigStore
	if noConfig {
		store = memory.NewConfigStore(nil)
	} else {
		fileStore, err := file.NewConfigStore("")
		if err != nil {
			return nil, err
		}
		store = fileStore
	}
	return services.NewOptionsService(store), nil
}
