package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fzz/internal/core/domain"
)

// uriScheme is the custom URI scheme for fzz resources.
const uriScheme = "fzz://"

// optionsInfo is the JSON form of domain.Options.
type optionsInfo struct {
	Delimiter       string  `json:"delimiter"`
	CaseInsensitive bool    `json:"case_insensitive"`
	Threshold       float64 `json:"threshold"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "options",
		Name:        "options",
		Description: "Effective default ranking options",
		MIMEType:    "application/json",
	}, s.handleOptionsResource)
}

// handleOptionsResource returns the effective default options.
func (s *Server) handleOptionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	opts, err := s.ports.defaults()
	if err != nil {
		return nil, fmt.Errorf("loading options: %w", err)
	}

	data, err := json.MarshalIndent(toOptionsInfo(opts), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling options: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func toOptionsInfo(opts domain.Options) optionsInfo {
	return optionsInfo{
		Delimiter:       domain.FormatDelimiter(opts.Delimiter),
		CaseInsensitive: opts.CaseInsensitive,
		Threshold:       opts.Threshold,
	}
}
