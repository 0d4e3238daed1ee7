package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fzz/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage default finder options",
	Long: `View and persist the default options used when no flag overrides them.

Settings are stored in ~/.fzz/config.toml (or $FZZ_CONFIG_DIR/config.toml).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a default option",
	Long: `Set a default option.

Available keys:
  delimiter        - Record delimiter: one character or \n, \t, \r
  case_insensitive - true or false
  threshold        - Minimum score in [0, 1]`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in defaults",
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if optionsService == nil {
		return errors.New("settings service not configured")
	}

	opts, err := optionsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	printOptions(cmd, opts)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if optionsService == nil {
		return errors.New("settings service not configured")
	}

	key := strings.ToLower(args[0])
	if err := optionsService.Set(key, args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("✓ %s set to %s\n", key, args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if optionsService == nil {
		return errors.New("settings service not configured")
	}

	if err := optionsService.Save(optionsService.Defaults()); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("✓ Settings restored to defaults")
	return nil
}

func printOptions(cmd *cobra.Command, opts domain.Options) {
	cmd.Println("Finder Settings")
	cmd.Println("===============")
	cmd.Printf("  delimiter:        %s\n", domain.FormatDelimiter(opts.Delimiter))
	cmd.Printf("  case_insensitive: %t\n", opts.CaseInsensitive)
	cmd.Printf("  threshold:        %.2f\n", opts.Threshold)
}
