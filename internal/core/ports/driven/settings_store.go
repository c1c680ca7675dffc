package driven

// Settings are user-tunable defaults read from the config file.
// Command-line flags override them per invocation.
type Settings struct {
	// OutputFormat is the default rendering for list and detail
	// output: "table", "json", or "csv".
	OutputFormat string

	// PageSize is the default page size for form listing.
	PageSize int64

	// CallbackPort is the localhost port the setup flow listens on
	// for the OAuth redirect.
	CallbackPort int
}

// SettingsStore persists user settings.
type SettingsStore interface {
	// Load reads settings, applying defaults for absent keys.
	Load() (Settings, error)

	// Save persists settings.
	Save(Settings) error

	// Path returns the settings file location.
	Path() string
}
