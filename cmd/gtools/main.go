// gtools manages Google Forms and reads Google Sheets from the
// command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/gtools-cli/internal/adapters/driven/auth"
	configfile "github.com/custodia-labs/gtools-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gtools-cli/internal/adapters/driven/credfile"
	"github.com/custodia-labs/gtools-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/gtools-cli/internal/connectors/google"
	googleforms "github.com/custodia-labs/gtools-cli/internal/connectors/google/forms"
	googlesheets "github.com/custodia-labs/gtools-cli/internal/connectors/google/sheets"
	"github.com/custodia-labs/gtools-cli/internal/core/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := 1
	if err := wire(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		code = cli.Execute(ctx)
	}

	stop()
	os.Exit(code)
}

// wire builds the adapters and services and installs them into the
// command tree. The API clients authenticate lazily, so wiring
// succeeds even before 'auth setup' has run.
func wire(ctx context.Context) error {
	store, err := credfile.NewStore("")
	if err != nil {
		return fmt.Errorf("init credentials store: %w", err)
	}
	settings, err := configfile.NewSettingsStore("")
	if err != nil {
		return fmt.Errorf("init settings store: %w", err)
	}

	broker := auth.NewBroker(store)
	tokenSource := google.NewTokenSource(ctx, broker)

	formsSvc, err := google.NewFormsService(ctx, tokenSource)
	if err != nil {
		return fmt.Errorf("init forms service: %w", err)
	}
	sheetsSvc, err := google.NewSheetsService(ctx, tokenSource)
	if err != nil {
		return fmt.Errorf("init sheets service: %w", err)
	}
	driveSvc, err := google.NewDriveService(ctx, tokenSource)
	if err != nil {
		return fmt.Errorf("init drive service: %w", err)
	}

	formsGateway := googleforms.NewClient(formsSvc, driveSvc)
	sheetsGateway := googlesheets.NewClient(sheetsSvc)

	cli.SetServices(&cli.Config{
		Auth:      services.NewAuthService(store, broker),
		Template:  services.NewTemplateService(formsGateway),
		Duplicate: services.NewDuplicateService(formsGateway),
		Forms:     formsGateway,
		Sheets:    sheetsGateway,
		Store:     store,
		Settings:  settings,
		Exchanger: broker,
	})
	return nil
}
