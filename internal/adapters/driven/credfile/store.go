// Package credfile stores the three OAuth secrets in a key=value file
// under the gtools config directory. The file is the only persistence
// in the system; saves are atomic so a crash mid-write cannot lock the
// user out of previously working credentials.
package credfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CredentialsStore = (*Store)(nil)

// FileName is the secrets file name inside the config directory.
const FileName = "credentials.env"

// Store is the file-backed credentials store.
type Store struct {
	filePath string

	// rename is swappable in tests to simulate a crash between the
	// temp write and the rename.
	rename func(oldpath, newpath string) error
}

// NewStore creates a credentials store rooted at configDir.
// If configDir is empty, defaults to ~/.gtools.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".gtools")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &Store{
		filePath: filepath.Join(configDir, FileName),
		rename:   os.Rename,
	}, nil
}

// Load parses the secrets file. A missing file or missing keys yield
// empty fields, never an error; the caller decides whether incomplete
// credentials route to the setup flow.
func (s *Store) Load() (domain.Credentials, error) {
	var creds domain.Credentials

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return creds, nil
		}
		return creds, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case domain.KeyClientID:
			creds.ClientID = value
		case domain.KeyClientSecret:
			creds.ClientSecret = value
		case domain.KeyRefreshToken:
			creds.RefreshToken = value
		}
	}

	return creds, nil
}

// Save overwrites the secrets file atomically: write to a temp file in
// the same directory, then rename over the target. On failure the
// previous file is left untouched.
func (s *Store) Save(creds domain.Credentials) error {
	dir := filepath.Dir(s.filePath)

	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp secrets file: %w", err)
	}
	tmpPath := tmp.Name()

	content := fmt.Sprintf("# gtools OAuth credentials\n# Generated by: gtools auth setup\n\n%s=%s\n%s=%s\n%s=%s\n",
		domain.KeyClientID, creds.ClientID,
		domain.KeyClientSecret, creds.ClientSecret,
		domain.KeyRefreshToken, creds.RefreshToken,
	)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp secrets file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp secrets file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp secrets file: %w", err)
	}

	if err := s.rename(tmpPath, s.filePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace secrets file: %w", err)
	}

	return nil
}

// Path returns the secrets file location.
func (s *Store) Path() string {
	return s.filePath
}
