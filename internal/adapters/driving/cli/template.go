package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gtools-cli/internal/core/services"
)

var formsApplyCmd = &cobra.Command{
	Use:   "apply [template.yaml]",
	Short: "Create a form from a YAML template",
	Long: `Create a form from a declarative YAML template.

The whole template is validated before any remote call: an invalid
question aborts with its index and nothing is created. "-" reads the
template from stdin.

Template shape:
  form:
    title: Team survey
    description: Quarterly check-in
  questions:
    - type: SHORT_ANSWER
      title: Full name
      required: true
    - type: MULTIPLE_CHOICE
      title: Team
      options: [Eng, Sales, Ops]`,
	Args: exactIDs(1),
	RunE: runFormsApply,
}

var formsExportTemplateCmd = &cobra.Command{
	Use:   "export-template [form-id]",
	Short: "Export a live form as a YAML template",
	Long: `Read a form and write an equivalent YAML template, suitable for
'forms apply'. Items the template format cannot express (images,
videos, section breaks) are omitted.`,
	Args: exactIDs(1),
	RunE: runFormsExportTemplate,
}

func init() {
	formsCmd.AddCommand(formsApplyCmd)
	formsCmd.AddCommand(formsExportTemplateCmd)
}

func runFormsApply(cmd *cobra.Command, args []string) error {
	if templateService == nil {
		return errNotConfigured
	}

	in := cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open template: %w", err)
		}
		defer f.Close()
		in = f
	}

	tpl, err := services.DecodeTemplate(in)
	if err != nil {
		return err
	}

	result, err := templateService.Apply(cmd.Context(), *tpl)
	if result != nil && result.FormID != "" {
		cmd.Printf("Created form %s with %d/%d questions\n",
			result.FormID, result.QuestionsAdded, len(tpl.Questions))
		cmd.Printf("  Edit:    %s\n", result.EditURI)
		cmd.Printf("  Respond: %s\n", result.ResponderURI)
	}
	return err
}

func runFormsExportTemplate(cmd *cobra.Command, args []string) error {
	if templateService == nil {
		return errNotConfigured
	}

	tpl, err := templateService.Export(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	w, closeFn, err := outputWriter(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	return services.EncodeTemplate(w, tpl)
}
