package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fzz/internal/core/domain"
)

// defaultLimit caps returned results when the caller sets no limit.
const defaultLimit = 20

// RankInput is the input schema for the rank tool.
type RankInput struct {
	Query           string   `json:"query" jsonschema:"the query to rank candidates against; empty keeps every candidate"`
	Items           []string `json:"items,omitempty" jsonschema:"candidate lines to rank"`
	Text            string   `json:"text,omitempty" jsonschema:"raw text split into candidates by the delimiter, used when items is empty"`
	Delimiter       string   `json:"delimiter,omitempty" jsonschema:"record delimiter for text, a single character or an escape such as \\n or \\t"`
	CaseInsensitive *bool    `json:"case_insensitive,omitempty" jsonschema:"fold case before scoring (default from settings)"`
	Threshold       *float64 `json:"threshold,omitempty" jsonschema:"minimum score in [0, 1] a candidate must exceed (default from settings)"`
	Limit           int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
}

// RankOutput is the output schema for the rank tool.
type RankOutput struct {
	Query   string               `json:"query"`
	Total   int                  `json:"total"`
	Matched int                  `json:"matched"`
	Count   int                  `json:"count"`
	Results []domain.RankedEntry `json:"results"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rank",
		Description: "Fuzzy-rank candidate lines against a query, best match first",
	}, s.handleRank)
}

// handleRank handles the rank tool invocation.
func (s *Server) handleRank(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RankInput,
) (*mcp.CallToolResult, RankOutput, error) {
	opts, err := s.ports.defaults()
	if err != nil {
		return nil, RankOutput{}, fmt.Errorf("loading options: %w", err)
	}
	if input.CaseInsensitive != nil {
		opts.CaseInsensitive = *input.CaseInsensitive
	}
	if input.Threshold != nil {
		opts.Threshold = *input.Threshold
	}
	if input.Delimiter != "" {
		d, err := domain.ParseDelimiter(input.Delimiter)
		if err != nil {
			return nil, RankOutput{}, err
		}
		opts.Delimiter = d
	}
	if err := opts.Validate(); err != nil {
		return nil, RankOutput{}, err
	}

	items := input.Items
	if len(items) == 0 {
		if input.Text == "" {
			return nil, RankOutput{}, ErrNoCandidates
		}
		items = splitText(input.Text, opts.Delimiter)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	list := s.ports.Ranking.RankLines(items, input.Query, opts)
	results := list.Entries
	if len(results) > limit {
		results = results[:limit]
	}

	return nil, RankOutput{
		Query:   input.Query,
		Total:   list.Total,
		Matched: list.Len(),
		Count:   len(results),
		Results: results,
	}, nil
}

// splitText splits text into records the way the input feed does: one
// trailing delimiter does not produce an empty record.
func splitText(text string, delimiter rune) []string {
	delim := string(delimiter)
	text = strings.TrimSuffix(text, delim)
	lines := strings.Split(text, delim)
	if delimiter == '\n' {
		for i, line := range lines {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}
