package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fzz/internal/core/domain"
)

func TestSettingsCmd_Structure(t *testing.T) {
	names := make([]string, 0)
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "set", "reset"}, names)
}

func TestRunSettingsShow(t *testing.T) {
	withServices(t)

	out, err := executeCommand(t, "", "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Finder Settings")
	assert.Contains(t, out, `delimiter:        \n`)
	assert.Contains(t, out, "case_insensitive: false")
	assert.Contains(t, out, "threshold:        0.20")
}

func TestRunSettings_DefaultsToShow(t *testing.T) {
	withServices(t)

	out, err := executeCommand(t, "", "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Finder Settings")
}

func TestRunSettingsSet(t *testing.T) {
	svc := withServices(t)

	out, err := executeCommand(t, "", "settings", "set", "threshold", "0.35")
	require.NoError(t, err)
	assert.Contains(t, out, "threshold set to 0.35")

	opts, err := svc.Get()
	require.NoError(t, err)
	assert.InDelta(t, 0.35, opts.Threshold, 1e-9)
}

func TestRunSettingsSet_KeyIsCaseInsensitive(t *testing.T) {
	svc := withServices(t)

	_, err := executeCommand(t, "", "settings", "set", "CASE_INSENSITIVE", "true")
	require.NoError(t, err)

	opts, err := svc.Get()
	require.NoError(t, err)
	assert.True(t, opts.CaseInsensitive)
}

func TestRunSettingsSet_Invalid(t *testing.T) {
	withServices(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"settings", "set", "colour", "blue"}},
		{"bad threshold", []string{"settings", "set", "threshold", "1.5"}},
		{"bad bool", []string{"settings", "set", "case_insensitive", "maybe"}},
		{"bad delimiter", []string{"settings", "set", "delimiter", "ab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, "", tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidOptions)
		})
	}
}

func TestRunSettingsSet_RequiresTwoArgs(t *testing.T) {
	withServices(t)

	_, err := executeCommand(t, "", "settings", "set", "threshold")
	assert.Error(t, err)
}

func TestRunSettingsReset(t *testing.T) {
	svc := withServices(t)
	require.NoError(t, svc.Save(domain.Options{Delimiter: ',', CaseInsensitive: true, Threshold: 0.9}))

	out, err := executeCommand(t, "", "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "restored to defaults")

	opts, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOptions(), opts)
}

func TestRunSettings_ServiceNotConfigured(t *testing.T) {
	withServices(t)
	optionsService = nil

	for _, args := range [][]string{
		{"settings", "show"},
		{"settings", "set", "threshold", "0.3"},
		{"settings", "reset"},
	} {
		_, err := executeCommand(t, "", args...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "settings service not configured")
	}
}
