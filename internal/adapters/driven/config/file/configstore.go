// Package file persists user settings as a TOML file in the gtools
// config directory. Settings hold defaults only; flags override them
// per invocation and secrets never live here.
package file

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// FileName is the settings file name inside the config directory.
const FileName = "config.toml"

// Defaults applied when the file or a key is absent.
const (
	DefaultOutputFormat = "table"
	DefaultPageSize     = 100
	DefaultCallbackPort = 8765
)

// fileSettings is the on-disk TOML shape.
type fileSettings struct {
	Output struct {
		Format string `toml:"format,omitempty"`
	} `toml:"output,omitempty"`
	Forms struct {
		PageSize int64 `toml:"page_size,omitempty"`
	} `toml:"forms,omitempty"`
	Auth struct {
		CallbackPort int `toml:"callback_port,omitempty"`
	} `toml:"auth,omitempty"`
}

// SettingsStore is the TOML-backed settings store.
type SettingsStore struct {
	filePath string
}

// NewSettingsStore creates a settings store rooted at configDir.
// If configDir is empty, defaults to ~/.gtools.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
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

	return &SettingsStore{
		filePath: filepath.Join(configDir, FileName),
	}, nil
}

// Load reads settings from disk. A missing file or missing keys yield
// the defaults, never an error.
func (s *SettingsStore) Load() (driven.Settings, error) {
	settings := driven.Settings{
		OutputFormat: DefaultOutputFormat,
		PageSize:     DefaultPageSize,
		CallbackPort: DefaultCallbackPort,
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}

	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return settings, err
	}

	if fs.Output.Format != "" {
		settings.OutputFormat = fs.Output.Format
	}
	if fs.Forms.PageSize > 0 {
		settings.PageSize = fs.Forms.PageSize
	}
	if fs.Auth.CallbackPort > 0 {
		settings.CallbackPort = fs.Auth.CallbackPort
	}

	return settings, nil
}

// Save persists settings to disk with restricted permissions.
func (s *SettingsStore) Save(settings driven.Settings) error {
	var fs fileSettings
	fs.Output.Format = settings.OutputFormat
	fs.Forms.PageSize = settings.PageSize
	fs.Auth.CallbackPort = settings.CallbackPort

	data, err := toml.Marshal(fs)
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
