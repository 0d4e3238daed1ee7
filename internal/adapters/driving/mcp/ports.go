package mcp

import (
	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ranking scores candidates against a query.
	Ranking driving.RankingService

	// Options supplies the persisted default options. Optional; built-in
	// defaults are used without it.
	Options driving.OptionsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Ranking == nil {
		return ErrMissingRankingService
	}
	return nil
}

// defaults returns the configured options, or the built-in ones.
func (p *Ports) defaults() (domain.Options, error) {
	if p.Options == nil {
		return domain.DefaultOptions(), nil
	}
	return p.Options.Get()
}
