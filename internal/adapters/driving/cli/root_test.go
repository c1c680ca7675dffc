package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "gtools", rootCmd.Use)
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	verbose := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	format := rootCmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)

	output := rootCmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
}

func TestRootCmd_HasTopLevelCommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "auth")
	assert.Contains(t, commandNames, "forms")
	assert.Contains(t, commandNames, "sheets")
	assert.Contains(t, commandNames, "mcp")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_FormatDefaultsFromSettings(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	flagFormat = ""

	require.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))

	assert.Equal(t, "table", flagFormat)
}

func TestRootCmd_NormalizesFormatCase(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	flagFormat = "JSON"

	require.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))

	assert.Equal(t, "json", flagFormat)
}

func TestRootCmd_RejectsUnknownFormat(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetArgs([]string{"forms", "list", "--format", "jsn"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "jsn"`)
}
