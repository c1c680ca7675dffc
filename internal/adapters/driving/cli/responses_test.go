package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

func TestFormsResponsesCmd_Executes(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"forms", "responses", "form-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "resp-1")
	assert.Contains(t, buf.String(), "2026-03-01T10:00:00Z")
}

func TestFormsResponsesCmd_EmptyListing(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()
	svc.forms.responses = &domain.ResponseList{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"forms", "responses", "form-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No responses.")
}

func TestFormsResponsesCmd_PrintsNextPageToken(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()
	svc.forms.responses = &domain.ResponseList{
		Responses:     []domain.ResponseSummary{{ResponseID: "resp-1"}},
		NextPageToken: "tok",
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"forms", "responses", "form-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "More results: --page-token tok")
}

func TestFormsExportCmd_WritesCSVToStdout(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"forms", "export", "form-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Timestamp,Name")
	assert.Contains(t, buf.String(), "Alice")
}

func TestFormsExportCmd_HasColumnFlags(t *testing.T) {
	assert.NotNil(t, formsExportCmd.Flags().Lookup("no-timestamps"))
	assert.NotNil(t, formsExportCmd.Flags().Lookup("email"))
}
