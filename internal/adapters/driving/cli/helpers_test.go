package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/custodia-labs/fzz/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fzz/internal/core/services"
)

// resetFlags restores every flag to its default so values do not leak
// between tests.
func resetFlags() {
	sets := []struct {
		lookup func(string) *pflag.Flag
		names  []string
	}{
		{rootCmd.PersistentFlags().Lookup, []string{"verbose", "log-file", "no-config", "delimiter", "case-insensitive", "threshold"}},
		{rootCmd.Flags().Lookup, []string{"scores"}},
		{filterCmd.Flags().Lookup, []string{"limit", "json", "scores"}},
		{mcpServeCmd.Flags().Lookup, []string{"port"}},
	}
	for _, set := range sets {
		for _, name := range set.names {
			f := set.lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
}

// withServices installs real services over an in-memory config store for
// the duration of the test.
func withServices(t *testing.T) *services.OptionsService {
	t.Helper()

	opts := services.NewOptionsService(memory.NewConfigStore(nil))
	oldRanking, oldOptions, oldFactory := rankingService, optionsService, optionsFactory
	SetServices(&Services{Ranking: services.NewRanker(), Options: opts})
	optionsFactory = nil
	t.Cleanup(func() {
		rankingService, optionsService, optionsFactory = oldRanking, oldOptions, oldFactory
	})
	return opts
}

// executeCommand runs the root command with args and stdin, returning
// everything written to stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
