// Package mcp provides an MCP (Model Context Protocol) server adapter for fzz.
// It lets AI assistants rank arbitrary candidate lists with the finder's
// scoring, without a terminal.
package mcp

import "errors"

// ErrMissingRankingService is returned when the ranking service is not provided.
var ErrMissingRankingService = errors.New("mcp: ranking service is required")

// ErrNoCandidates is returned when a rank call carries neither items nor text.
var ErrNoCandidates = errors.New("mcp: items or text is required")
