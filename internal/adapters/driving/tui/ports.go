// Package tui provides the interactive finder user interface for fzz.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Bus carries key presses in and session events out.
	Bus driving.EventBus

	// Controller owns the session state the TUI renders.
	Controller driving.Controller
}

// NewPorts creates a new Ports aggregate.
func NewPorts(bus driving.EventBus, controller driving.Controller) *Ports {
	return &Ports{
		Bus:        bus,
		Controller: controller,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Bus == nil {
		return ErrMissingEventBus
	}
	if p.Controller == nil {
		return ErrMissingController
	}
	return nil
}
