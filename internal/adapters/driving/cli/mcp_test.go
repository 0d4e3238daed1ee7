package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fzz/internal/adapters/driving/mcp"
)

func TestMCPCmd_Structure(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	require.Len(t, mcpCmd.Commands(), 1)
	assert.Equal(t, "serve", mcpCmd.Commands()[0].Name())

	port := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)
	assert.Equal(t, "0", port.DefValue)
}

func TestRunMCPServe_RequiresRankingService(t *testing.T) {
	withServices(t)
	rankingService = nil

	_, err := executeCommand(t, "", "mcp", "serve")
	assert.ErrorIs(t, err, mcp.ErrMissingRankingService)
}
