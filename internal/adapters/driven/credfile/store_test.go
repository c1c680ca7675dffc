package credfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoad_MissingFileYieldsEmptyCredentials(t *testing.T) {
	store := newTestStore(t)

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Credentials{}, creds)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := domain.Credentials{
		ClientID:     "id.apps.googleusercontent.com",
		ClientSecret: "s3cret",
		RefreshToken: "1//refresh",
	}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSave_RestrictsPermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(domain.Credentials{ClientID: "id"}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoad_PartialFileFillsKnownKeysOnly(t *testing.T) {
	store := newTestStore(t)

	content := "# comment\nGOOGLE_CLIENT_ID=abc\nUNRELATED=x\n\nGOOGLE_REFRESH_TOKEN = rt \n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", creds.ClientID)
	assert.Empty(t, creds.ClientSecret)
	assert.Equal(t, "rt", creds.RefreshToken)
	assert.False(t, creds.Complete())
}

func TestSave_CrashBeforeRenameLeavesPreviousFileIntact(t *testing.T) {
	store := newTestStore(t)

	previous := domain.Credentials{ClientID: "old-id", ClientSecret: "old-secret", RefreshToken: "old-rt"}
	require.NoError(t, store.Save(previous))

	// Simulate a crash between the temp write and the rename.
	store.rename = func(_, _ string) error {
		return errors.New("process killed")
	}

	err := store.Save(domain.Credentials{ClientID: "new-id", ClientSecret: "new-secret", RefreshToken: "new-rt"})
	assert.Error(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, previous, loaded)

	// No temp debris left behind.
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}

func TestSave_OverwritesExistingFile(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(domain.Credentials{ClientID: "a", ClientSecret: "b", RefreshToken: "c"}))
	require.NoError(t, store.Save(domain.Credentials{ClientID: "x", ClientSecret: "y", RefreshToken: "z"}))

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "x", creds.ClientID)
	assert.Equal(t, "z", creds.RefreshToken)
}
