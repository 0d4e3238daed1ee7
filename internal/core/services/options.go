package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/ports/driven"
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
	"github.com/custodia-labs/fzz/internal/logger"
)

// Ensure OptionsService implements the interface.
var _ driving.OptionsService = (*OptionsService)(nil)

// Option names accepted by Set.
const (
	OptionDelimiter       = "delimiter"
	OptionCaseInsensitive = "case_insensitive"
	OptionThreshold       = "threshold"
)

// Config keys for option storage.
const (
	keyDelimiter       = "finder." + OptionDelimiter
	keyCaseInsensitive = "finder." + OptionCaseInsensitive
	keyThreshold       = "finder." + OptionThreshold
)

// OptionNames lists the option names accepted by Set, in display order.
func OptionNames() []string {
	return []string{OptionDelimiter, OptionCaseInsensitive, OptionThreshold}
}

// OptionsService manages the persisted default finder options.
type OptionsService struct {
	configStore driven.ConfigStore
}

// NewOptionsService creates a new options service.
func NewOptionsService(configStore driven.ConfigStore) *OptionsService {
	return &OptionsService{configStore: configStore}
}

// Get retrieves the configured options. Missing or invalid values fall
// back to their defaults.
func (s *OptionsService) Get() (domain.Options, error) {
	opts := domain.DefaultOptions()

	if raw := s.configStore.GetString(keyDelimiter); raw != "" {
		if d, err := domain.ParseDelimiter(raw); err == nil {
			opts.Delimiter = d
		} else {
			logger.Warn("options: ignoring %s: %v", keyDelimiter, err)
		}
	}

	if _, ok := s.configStore.Get(keyCaseInsensitive); ok {
		opts.CaseInsensitive = s.configStore.GetBool(keyCaseInsensitive)
	}

	if _, ok := s.configStore.Get(keyThreshold); ok {
		threshold := s.configStore.GetFloat(keyThreshold)
		if threshold >= 0 && threshold <= 1 {
			opts.Threshold = threshold
		} else {
			logger.Warn("options: ignoring %s=%v outside [0, 1]", keyThreshold, threshold)
		}
	}

	return opts, nil
}

// Save persists options as the new defaults.
func (s *OptionsService) Save(opts domain.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(keyDelimiter, domain.FormatDelimiter(opts.Delimiter)); err != nil {
		return fmt.Errorf("save delimiter: %w", err)
	}
	if err := s.configStore.Set(keyCaseInsensitive, opts.CaseInsensitive); err != nil {
		return fmt.Errorf("save case_insensitive: %w", err)
	}
	if err := s.configStore.Set(keyThreshold, opts.Threshold); err != nil {
		return fmt.Errorf("save threshold: %w", err)
	}
	return nil
}

// Set parses value and updates the named option.
func (s *OptionsService) Set(key, value string) error {
	opts, err := s.Get()
	if err != nil {
		return err
	}

	switch strings.ToLower(key) {
	case OptionDelimiter:
		d, err := domain.ParseDelimiter(value)
		if err != nil {
			return err
		}
		opts.Delimiter = d
	case OptionCaseInsensitive:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: case_insensitive must be true or false", domain.ErrInvalidOptions)
		}
		opts.CaseInsensitive = b
	case OptionThreshold:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: threshold %q is not a number", domain.ErrInvalidOptions, value)
		}
		opts.Threshold = f
	default:
		return fmt.Errorf("%w: unknown option %q (valid: %s)",
			domain.ErrInvalidOptions, key, strings.Join(OptionNames(), ", "))
	}

	return s.Save(opts)
}

// Defaults returns the built-in default options.
func (s *OptionsService) Defaults() domain.Options {
	return domain.DefaultOptions()
}
