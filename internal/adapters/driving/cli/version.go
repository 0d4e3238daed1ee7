package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fzz/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and effective default options",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	cmd.Printf("fzz %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	cmd.Printf("defaults: delimiter=%s case_insensitive=%t threshold=%.2f\n",
		domain.FormatDelimiter(opts.Delimiter), opts.CaseInsensitive, opts.Threshold)
	return nil
}
