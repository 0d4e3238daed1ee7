// Package domain defines the core entities for fzz.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CorpusSnapshot: An immutable view of the append-only input buffer
//   - RankedEntry / RankedList: The output of one ranking job
//   - Options: The immutable finder configuration
//   - Event: Everything that flows through the event bus
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
