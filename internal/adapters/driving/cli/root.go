// Package cli provides the command-line interface for fzz.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
	"github.com/custodia-labs/fzz/internal/logger"
)

// version is set by SetVersion from the build.
var version = "dev"

// Services holds the long-lived services shared by every command.
type Services struct {
	Ranking driving.RankingService
	Options driving.OptionsService
}

// OptionsFactory builds the options service once flags are parsed.
// noConfig selects an in-memory store instead of the config file.
type OptionsFactory func(noConfig bool) (driving.OptionsService, error)

var (
	rankingService driving.RankingService
	optionsService driving.OptionsService
	optionsFactory OptionsFactory
)

// Global flags.
var (
	verbose  bool
	logFile  string
	noConfig bool

	delimiterFlag   string
	caseInsensitive bool
	threshold       float64
	showScores      bool
)

// logCloser closes the --log-file handle after the command.
var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "fzz",
	Short: "Interactive fuzzy finder for lines read from stdin",
	Long: `fzz reads records from stdin, lets you narrow them down with a fuzzy
query and prints the selected record to stdout.

The finder draws on the controlling terminal, so it composes with pipes:

  vim "$(find . -type f | fzz)"

Records are ranked by trigram similarity to the query (containment for
queries shorter than three characters). Input keeps streaming in while
you type.

Keys:
  type       - Edit the query
  Backspace  - Delete the last character
  ↑/Ctrl+P   - Move up
  ↓/Ctrl+N   - Move down
  Enter      - Print the highlighted record and exit
  Esc/Ctrl+C - Exit without a selection`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runFinder,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	flags.StringVar(&logFile, "log-file", "", "write verbose logs to this file")
	flags.BoolVar(&noConfig, "no-config", false, "ignore ~/.fzz/config.toml and use built-in defaults")
	flags.StringVarP(&delimiterFlag, "delimiter", "d", `\n`, `record delimiter: one character or \n, \t, \r`)
	flags.BoolVarP(&caseInsensitive, "case-insensitive", "i", false, "ignore case when ranking")
	flags.Float64VarP(&threshold, "threshold", "t", domain.DefaultThreshold, "minimum score in [0, 1] a record must exceed")

	rootCmd.Flags().BoolVar(&showScores, "scores", false, "show scores next to results")
}

// SetServices sets the services used by the commands.
func SetServices(s *Services) {
	rankingService = s.Ranking
	optionsService = s.Options
}

// SetOptionsFactory sets the factory called before each command to build
// the options service.
func SetOptionsFactory(f OptionsFactory) {
	optionsFactory = f
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup configures logging and builds the options service.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetSession(uuid.NewString()[:8])
	if logFile != "" {
		f, err := logger.OpenFile(logFile)
		if err != nil {
			return err
		}
		logCloser = f
	}

	if optionsFactory != nil {
		svc, err := optionsFactory(noConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		optionsService = svc
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
		logger.SetOutput(os.Stderr)
	}
}

// resolveOptions merges configured defaults with explicitly set flags.
func resolveOptions(cmd *cobra.Command) (domain.Options, error) {
	opts := domain.DefaultOptions()
	if optionsService != nil {
		configured, err := optionsService.Get()
		if err != nil {
			return domain.Options{}, fmt.Errorf("loading options: %w", err)
		}
		opts = configured
	}

	flags := cmd.Flags()
	if flags.Changed("delimiter") {
		d, err := domain.ParseDelimiter(delimiterFlag)
		if err != nil {
			return domain.Options{}, err
		}
		opts.Delimiter = d
	}
	if flags.Changed("case-insensitive") {
		opts.CaseInsensitive = caseInsensitive
	}
	if flags.Changed("threshold") {
		opts.Threshold = threshold
	}

	if err := opts.Validate(); err != nil {
		return domain.Options{}, err
	}
	return opts, nil
}

// isTerminal reports whether r is an interactive terminal.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
