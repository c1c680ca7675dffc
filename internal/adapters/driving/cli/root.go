// Package cli implements the gtools command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driving"
	"github.com/custodia-labs/gtools-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// codeExchanger is the slice of the token broker the setup wizard
// needs.
type codeExchanger interface {
	ExchangeAuthorizationCode(ctx context.Context, creds domain.Credentials, code, redirectURI string) (string, error)
}

// Services wired in by main. Tests swap these for mocks.
var (
	authService      driving.AuthService
	templateService  driving.TemplateService
	duplicateService driving.DuplicateService
	formsGateway     driven.FormsGateway
	sheetsGateway    driven.SheetsGateway
	credentialsStore driven.CredentialsStore
	settingsStore    driven.SettingsStore
	tokenExchanger   codeExchanger
)

// Config carries the services the command tree depends on.
type Config struct {
	Auth      driving.AuthService
	Template  driving.TemplateService
	Duplicate driving.DuplicateService
	Forms     driven.FormsGateway
	Sheets    driven.SheetsGateway
	Store     driven.CredentialsStore
	Settings  driven.SettingsStore
	Exchanger codeExchanger
}

// SetServices wires the services into the command tree.
func SetServices(cfg *Config) {
	authService = cfg.Auth
	templateService = cfg.Template
	duplicateService = cfg.Duplicate
	formsGateway = cfg.Forms
	sheetsGateway = cfg.Sheets
	credentialsStore = cfg.Store
	settingsStore = cfg.Settings
	tokenExchanger = cfg.Exchanger
}

// Persistent flags.
var (
	flagVerbose bool
	flagFormat  string
	flagOutput  string
)

var rootCmd = &cobra.Command{
	Use:   "gtools",
	Short: "Manage Google Forms and Sheets from the command line",
	Long: `gtools creates and manages Google Forms and reads Google Sheets.

Credentials are stored in ~/.gtools/credentials.env; run 'gtools auth setup'
once to configure them.

Examples:
  gtools auth setup
  gtools forms create --title "Team survey"
  gtools forms apply template.yaml
  gtools sheets read <spreadsheet-id-or-url> --range A1:C10`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		if flagFormat == "" && settingsStore != nil {
			if settings, err := settingsStore.Load(); err == nil {
				flagFormat = settings.OutputFormat
			}
		}
		if flagFormat == "" {
			flagFormat = "table"
		}
		flagFormat = strings.ToLower(flagFormat)
		switch flagFormat {
		case "table", "json", "csv":
			return nil
		}
		return fmt.Errorf("invalid format %q: must be table, json, or csv", flagFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "output format: table, json, or csv")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "write output to file instead of stdout")
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	reportError(rootCmd, err)
	return ExitCode(err)
}

// errNotConfigured is returned when a command runs without its service
// wired, which only happens in tests or broken builds.
var errNotConfigured = errors.New("service not configured")

// exactIDs requires exactly n positional arguments, none of them blank.
// IDs are opaque; anything beyond non-blank is the remote service's
// call.
func exactIDs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return err
		}
		for i, arg := range args {
			if !domain.ValidResourceID(arg) {
				return fmt.Errorf("argument %d must not be blank", i+1)
			}
		}
		return nil
	}
}
