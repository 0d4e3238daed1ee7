package tui

import "errors"

// ErrMissingEventBus is returned when the event bus is not provided.
var ErrMissingEventBus = errors.New("tui: event bus is required")

// ErrMissingController is returned when the controller is not provided.
var ErrMissingController = errors.New("tui: controller is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
