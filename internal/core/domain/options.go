package domain

import (
	"fmt"
	"unicode/utf8"
)

// Default option values.
const (
	DefaultDelimiter = '\n'
	DefaultThreshold = 0.2
)

// Options configures ranking for a whole session.
// It is set once at startup and never mutated afterwards.
type Options struct {
	// Delimiter splits the input into records.
	Delimiter rune

	// CaseInsensitive folds entries and query to lower case before scoring.
	CaseInsensitive bool

	// Threshold is the minimum score (exclusive) an entry needs to be kept
	// when the query is non-empty. Must lie in [0, 1].
	Threshold float64
}

// DefaultOptions returns the default finder options.
func DefaultOptions() Options {
	return Options{
		Delimiter:       DefaultDelimiter,
		CaseInsensitive: false,
		Threshold:       DefaultThreshold,
	}
}

// Validate checks the options for consistency.
func (o Options) Validate() error {
	if o.Delimiter == 0 || o.Delimiter == utf8.RuneError {
		return fmt.Errorf("%w: delimiter must be a single valid character", ErrInvalidOptions)
	}
	if o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("%w: threshold %.2f outside [0, 1]", ErrInvalidOptions, o.Threshold)
	}
	return nil
}

// DelimiterBytes returns the UTF-8 encoding of the delimiter.
func (o Options) DelimiterBytes() []byte {
	return utf8.AppendRune(nil, o.Delimiter)
}

// ParseDelimiter converts user input into a delimiter rune.
// Accepts a single character or one of the escapes \n, \t, \0 and \r.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case `\n`:
		return '\n', nil
	case `\t`:
		return '\t', nil
	case `\r`:
		return '\r', nil
	case `\0`:
		return 0, fmt.Errorf("%w: NUL delimiter is not supported", ErrInvalidOptions)
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: delimiter %q must be exactly one character", ErrInvalidOptions, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("%w: delimiter %q is not valid UTF-8", ErrInvalidOptions, s)
	}
	return r, nil
}

// FormatDelimiter is the inverse of ParseDelimiter.
func FormatDelimiter(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	default:
		return string(r)
	}
}
