package driving

import "github.com/custodia-labs/fzz/internal/core/domain"

// OptionsService manages the persisted default finder options.
type OptionsService interface {
	// Get retrieves the configured options, falling back to defaults.
	Get() (domain.Options, error)

	// Save persists options as the new defaults.
	Save(opts domain.Options) error

	// Set updates a single option by key ("delimiter", "case_insensitive", "threshold").
	Set(key, value string) error

	// Defaults returns the built-in default options.
	Defaults() domain.Options
}
