package driven

import "github.com/custodia-labs/gtools-cli/internal/core/domain"

// CredentialsStore persists the three OAuth secrets.
type CredentialsStore interface {
	// Load reads the secrets file. A missing file or missing keys yield
	// progressively empty fields, never an error.
	Load() (domain.Credentials, error)

	// Save overwrites the secrets file atomically (temp write, then
	// rename) so a crash mid-write cannot corrupt valid credentials.
	Save(domain.Credentials) error

	// Path returns the secrets file location, for user-facing messages.
	Path() string
}
