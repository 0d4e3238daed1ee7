package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fzz/internal/core/domain"
)

func TestFilterCmd_Use(t *testing.T) {
	assert.Equal(t, "filter [query]", filterCmd.Use)
}

func TestFilterCmd_Flags(t *testing.T) {
	limit := filterCmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "n", limit.Shorthand)
	assert.Equal(t, "0", limit.DefValue)

	assert.NotNil(t, filterCmd.Flags().Lookup("json"))
	assert.NotNil(t, filterCmd.Flags().Lookup("scores"))
}

func TestRunFilter_RanksBestFirst(t *testing.T) {
	withServices(t)

	out, err := executeCommand(t, "dog\ncaterpillar\ncat\n", "filter", "cat")
	require.NoError(t, err)
	assert.Equal(t, "cat\ncaterpillar\n", out)
}

func TestRunFilter_EmptyQueryKeepsEveryRecordShortestFirst(t *testing.T) {
	withServices(t)

	out, err := executeCommand(t, "banana\napple\ncherry\n", "filter")
	require.NoError(t, err)
	assert.Equal(t, "apple\nbanana\ncherry\n", out)
}

func TestRunFilter_Limit(t *testing.T) {
	withServices(t)

	out, err := executeCommand(t, "a\nb\nc\n", "filter", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestRunFilter_Scores(t *testing.T) {
	withServices(t)

	out, err := executeCommand(t, "cat\n", "filter", "cat", "--scores")
	require.NoError(t, err)
	assert.Equal(t, "1.000\tcat\n", out)
}

func TestRunFilter_JSON(t *testing.T) {
	withServices(t)

	out, err := executeCommand(t, "dog\ncat\n", "filter", "cat", "--json")
	require.NoError(t, err)

	var entries []domain.RankedEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Index)
	assert.Equal(t, "cat", entries[0].Text)
}

func TestRunFilter_JSONNoMatches(t *testing.T) {
	withServices(t)

	out, err := executeCommand(t, "dog\n", "filter", "zebra", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestRunFilter_CaseInsensitive(t *testing.T) {
	withServices(t)

	out, err := executeCommand(t, "CAT\n", "filter", "cat")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = executeCommand(t, "CAT\n", "filter", "cat", "-i")
	require.NoError(t, err)
	assert.Equal(t, "CAT\n", out)
}

func TestRunFilter_CustomDelimiter(t *testing.T) {
	withServices(t)

	out, err := executeCommand(t, "x,y,z", "filter", "-d", ",")
	require.NoError(t, err)
	assert.Equal(t, "x\ny\nz\n", out)
}

func TestRunFilter_ServiceNotConfigured(t *testing.T) {
	withServices(t)
	rankingService = nil

	_, err := executeCommand(t, "a\n", "filter", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ranking service not configured")
}

func TestRunFilter_InvalidOptions(t *testing.T) {
	withServices(t)

	_, err := executeCommand(t, "a\n", "filter", "a", "-t", "-1")
	assert.True(t, errors.Is(err, domain.ErrInvalidOptions))
}
