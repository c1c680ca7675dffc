package file

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
)

func newTestSettingsStore(t *testing.T) *SettingsStore {
	t.Helper()
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	store := newTestSettingsStore(t)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputFormat, settings.OutputFormat)
	assert.Equal(t, int64(DefaultPageSize), settings.PageSize)
	assert.Equal(t, DefaultCallbackPort, settings.CallbackPort)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestSettingsStore(t)

	in := driven.Settings{
		OutputFormat: "json",
		PageSize:     25,
		CallbackPort: 9000,
	}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_PartialFileKeepsDefaultsForAbsentKeys(t *testing.T) {
	store := newTestSettingsStore(t)

	content := "[output]\nformat = \"csv\"\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "csv", settings.OutputFormat)
	assert.Equal(t, int64(DefaultPageSize), settings.PageSize)
	assert.Equal(t, DefaultCallbackPort, settings.CallbackPort)
}

func TestSave_RestrictsPermissions(t *testing.T) {
	store := newTestSettingsStore(t)
	require.NoError(t, store.Save(driven.Settings{OutputFormat: "table"}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
