package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	brokerauth "github.com/custodia-labs/gtools-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/gtools-cli/internal/adapters/driving/oauth"
	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Google API credentials",
	Long: `Configure and verify the OAuth credentials gtools uses.

Credentials live in ~/.gtools/credentials.env with owner-only
permissions. 'auth setup' walks through the browser consent flow and
stores the resulting refresh token; 'auth check' verifies the stored
credentials against Google.`,
}

var authSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure credentials via the browser consent flow",
	Long: `Configure OAuth credentials interactively.

You need an OAuth client (Desktop app type) from the Google Cloud
console with the Forms, Sheets, and Drive APIs enabled.

Examples:
  gtools auth setup
  gtools auth setup --client-id "xxx" --client-secret "yyy"
  gtools auth setup --no-browser`,
	RunE: runAuthSetup,
}

var authCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the stored credentials",
	RunE:  runAuthCheck,
}

var (
	authSetupClientID     string
	authSetupClientSecret string
	authSetupNoBrowser    bool
	authSetupPort         int
)

// callbackTimeout bounds the wait for the browser consent round trip.
const callbackTimeout = 5 * time.Minute

func init() {
	authSetupCmd.Flags().StringVar(&authSetupClientID, "client-id", "", "OAuth client ID")
	authSetupCmd.Flags().StringVar(&authSetupClientSecret, "client-secret", "", "OAuth client secret")
	authSetupCmd.Flags().BoolVar(&authSetupNoBrowser, "no-browser", false, "print the authorization URL instead of opening a browser")
	authSetupCmd.Flags().IntVar(&authSetupPort, "port", 0, "localhost callback port (0 = from config)")

	authCmd.AddCommand(authSetupCmd)
	authCmd.AddCommand(authCheckCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthSetup(cmd *cobra.Command, _ []string) error {
	if credentialsStore == nil || tokenExchanger == nil {
		return errNotConfigured
	}

	existing, err := credentialsStore.Load()
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}

	creds := domain.Credentials{
		ClientID:     authSetupClientID,
		ClientSecret: authSetupClientSecret,
	}
	// One reader for the whole wizard; a fresh reader per prompt would
	// swallow buffered lines.
	stdin := bufio.NewReader(cmd.InOrStdin())
	if creds.ClientID == "" {
		creds.ClientID, err = promptLine(cmd, stdin, "Client ID", existing.ClientID)
		if err != nil {
			return err
		}
	}
	if creds.ClientSecret == "" {
		creds.ClientSecret, err = promptSecret(cmd, stdin, "Client secret", existing.ClientSecret)
		if err != nil {
			return err
		}
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return &domain.AuthError{
			Kind:   domain.AuthMissingCredentials,
			Detail: "client ID and client secret are required",
		}
	}

	port := authSetupPort
	if port == 0 && settingsStore != nil {
		if settings, err := settingsStore.Load(); err == nil {
			port = settings.CallbackPort
		}
	}

	state := oauth.NewState()
	server, err := startCallbackServer(cmd, port, state)
	if err != nil {
		return err
	}
	defer server.Stop()

	authURL := brokerauth.AuthCodeURL(creds, server.RedirectURI(), state)
	if authSetupNoBrowser {
		cmd.Println("Open this URL in a browser to authorize gtools:")
		cmd.Println()
		cmd.Println("  " + authURL)
	} else {
		cmd.Println("Opening browser for authorization...")
		if err := oauth.OpenBrowser(authURL); err != nil {
			cmd.Println("Could not open a browser. Visit this URL instead:")
			cmd.Println()
			cmd.Println("  " + authURL)
		}
	}
	cmd.Println()
	cmd.Println("Waiting for authorization...")

	code, err := server.WaitForCode(callbackTimeout)
	if err != nil {
		return &domain.AuthError{Kind: domain.AuthExchangeRejected, Detail: err.Error(), Err: err}
	}

	refreshToken, err := tokenExchanger.ExchangeAuthorizationCode(
		cmd.Context(), creds, code, server.RedirectURI())
	if err != nil {
		return err
	}
	creds.RefreshToken = refreshToken

	if err := credentialsStore.Save(creds); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	cmd.Printf("Credentials saved to %s\n", credentialsStore.Path())
	return nil
}

func runAuthCheck(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errNotConfigured
	}

	report, err := authService.Check(cmd.Context())
	if report != nil {
		cmd.Printf("Credentials file: %s\n", report.Path)
	}
	if err != nil {
		return err
	}

	if len(report.MissingKeys) > 0 {
		cmd.Printf("Missing keys: %s\n", strings.Join(report.MissingKeys, ", "))
		cmd.Println("Run 'gtools auth setup' to configure credentials.")
		return &domain.AuthError{
			Kind:   domain.AuthMissingCredentials,
			Detail: strings.Join(report.MissingKeys, ", "),
		}
	}

	cmd.Println("Authenticated. Access token obtained.")
	cmd.Printf("Token expires: %s\n", report.TokenExpiry)
	return nil
}

// callbackPortSpan bounds the search for a fallback callback port.
const callbackPortSpan = 50

// startCallbackServer starts the redirect listener. When the
// configured port is busy it falls back to a nearby free one; Google
// accepts any loopback port for desktop clients. Port 0 lets the OS
// pick.
func startCallbackServer(cmd *cobra.Command, port int, state string) (*oauth.CallbackServer, error) {
	server := oauth.NewCallbackServer(port, state)
	err := server.Start()
	if err == nil {
		return server, nil
	}
	if port == 0 {
		return nil, fmt.Errorf("start callback server: %w", err)
	}

	fallback, ferr := oauth.FindAvailablePort(port+1, port+callbackPortSpan)
	if ferr != nil {
		return nil, fmt.Errorf("start callback server: %w", err)
	}
	cmd.Printf("Port %d is busy; using %d instead.\n", port, fallback)

	server = oauth.NewCallbackServer(fallback, state)
	if err := server.Start(); err != nil {
		return nil, fmt.Errorf("start callback server: %w", err)
	}
	return server, nil
}

// promptLine reads one line, offering the previous value as the
// default.
func promptLine(cmd *cobra.Command, stdin *bufio.Reader, label, previous string) (string, error) {
	if previous != "" {
		cmd.Printf("%s [%s]: ", label, previous)
	} else {
		cmd.Printf("%s: ", label)
	}

	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return previous, nil
	}
	return line, nil
}

// promptSecret reads a value without echo when stdin is a terminal.
func promptSecret(cmd *cobra.Command, stdin *bufio.Reader, label, previous string) (string, error) {
	if previous != "" {
		cmd.Printf("%s [keep current]: ", label)
	} else {
		cmd.Printf("%s: ", label)
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		value := strings.TrimSpace(string(raw))
		if value == "" {
			return previous, nil
		}
		return value, nil
	}

	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return previous, nil
	}
	return line, nil
}
