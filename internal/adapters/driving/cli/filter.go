package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/services"
)

var (
	filterLimit  int
	filterJSON   bool
	filterScores bool
)

var filterCmd = &cobra.Command{
	Use:   "filter [query]",
	Short: "Rank stdin against a query without the interactive finder",
	Long: `Reads every record from stdin, ranks them once against the query and
prints the surviving records, best match first.

An empty or missing query prints every record in tie-break order
(shortest first, then input order).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().IntVarP(&filterLimit, "limit", "n", 0, "maximum number of results (0 = all)")
	filterCmd.Flags().BoolVar(&filterJSON, "json", false, "output results as JSON")
	filterCmd.Flags().BoolVar(&filterScores, "scores", false, "prefix each record with its score")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	if rankingService == nil {
		return errors.New("ranking service not configured")
	}

	query := strings.Join(args, " ")

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	lines, err := services.ReadRecords(cmd.InOrStdin(), opts.Delimiter)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	list := rankingService.RankLines(lines, query, opts)
	entries := list.Entries
	if filterLimit > 0 && len(entries) > filterLimit {
		entries = entries[:filterLimit]
	}

	if filterJSON {
		return outputFilterJSON(cmd, entries)
	}
	outputFilterLines(cmd, entries)
	return nil
}

func outputFilterJSON(cmd *cobra.Command, entries []domain.RankedEntry) error {
	if entries == nil {
		entries = []domain.RankedEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputFilterLines(cmd *cobra.Command, entries []domain.RankedEntry) {
	out := cmd.OutOrStdout()
	for _, e := range entries {
		if filterScores {
			fmt.Fprintf(out, "%.3f\t%s\n", e.Score, e.Text)
			continue
		}
		fmt.Fprintln(out, e.Text)
	}
}
