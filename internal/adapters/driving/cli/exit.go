package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// Process exit codes. Scripts branch on these.
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitAuth     = 2
	ExitGateway  = 3
	ExitTemplate = 4
)

// ExitCode maps an error onto the exit code taxonomy. Unknown errors
// count as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if _, ok := domain.IsTemplateError(err); ok {
		return ExitTemplate
	}
	if _, ok := domain.IsAuthError(err); ok {
		return ExitAuth
	}
	if _, ok := domain.IsGatewayError(err); ok {
		return ExitGateway
	}
	return ExitUsage
}

// reportError prints the error and, for auth failures, the recovery
// hint.
func reportError(cmd *cobra.Command, err error) {
	cmd.PrintErrf("Error: %v\n", err)
	if ae, ok := domain.IsAuthError(err); ok {
		if hint := ae.Hint(); hint != "" {
			cmd.PrintErrln(hint)
		}
	}
}
