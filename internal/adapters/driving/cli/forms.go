package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "Create and manage Google Forms",
	Long: `Create, inspect, update, and delete Google Forms.

Listing and deletion only cover forms created through gtools; the
drive.file scope hides everything else.

Examples:
  gtools forms create --title "Team survey" --description "Quarterly"
  gtools forms list
  gtools forms get <form-id>
  gtools forms duplicate <form-id> --title "Review for NAME" --personalize "Alice"`,
}

var formsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List forms created through gtools",
	RunE:  runFormsList,
}

var formsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an empty form",
	RunE:  runFormsCreate,
}

var formsGetCmd = &cobra.Command{
	Use:   "get [form-id]",
	Short: "Show a form's structure",
	Args:  exactIDs(1),
	RunE:  runFormsGet,
}

var formsUpdateCmd = &cobra.Command{
	Use:   "update [form-id]",
	Short: "Update a form's title or description",
	Args:  exactIDs(1),
	RunE:  runFormsUpdate,
}

var formsDeleteCmd = &cobra.Command{
	Use:   "delete [form-id]",
	Short: "Delete a form",
	Args:  exactIDs(1),
	RunE:  runFormsDelete,
}

var formsDuplicateCmd = &cobra.Command{
	Use:   "duplicate [form-id]",
	Short: "Copy a form, optionally personalizing placeholders",
	Long: `Copy a form's structure into a new form.

With --personalize, occurrences of the placeholders NAME and
"Employee Name" in the copy's title, description, and items are
replaced with the given name. The copy is not atomic: if adding items
fails part-way, the partial form is reported.`,
	Args: exactIDs(1),
	RunE: runFormsDuplicate,
}

var (
	formsListPageSize  int64
	formsListPageToken string

	formsCreateTitle       string
	formsCreateDescription string

	formsUpdateTitle       string
	formsUpdateDescription string

	formsDeleteYes bool

	formsDuplicateTitle       string
	formsDuplicatePersonalize string
)

func init() {
	formsListCmd.Flags().Int64Var(&formsListPageSize, "page-size", 0, "forms per page (0 = from config)")
	formsListCmd.Flags().StringVar(&formsListPageToken, "page-token", "", "continue a previous listing")

	formsCreateCmd.Flags().StringVarP(&formsCreateTitle, "title", "t", "", "form title (required)")
	formsCreateCmd.Flags().StringVarP(&formsCreateDescription, "description", "d", "", "form description")
	_ = formsCreateCmd.MarkFlagRequired("title")

	formsUpdateCmd.Flags().StringVarP(&formsUpdateTitle, "title", "t", "", "new title")
	formsUpdateCmd.Flags().StringVarP(&formsUpdateDescription, "description", "d", "", "new description")

	formsDeleteCmd.Flags().BoolVarP(&formsDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	formsDuplicateCmd.Flags().StringVarP(&formsDuplicateTitle, "title", "t", "", "title for the copy (default \"Copy of <title>\")")
	formsDuplicateCmd.Flags().StringVar(&formsDuplicatePersonalize, "personalize", "", "replace NAME placeholders with this name")

	formsCmd.AddCommand(formsListCmd)
	formsCmd.AddCommand(formsCreateCmd)
	formsCmd.AddCommand(formsGetCmd)
	formsCmd.AddCommand(formsUpdateCmd)
	formsCmd.AddCommand(formsDeleteCmd)
	formsCmd.AddCommand(formsDuplicateCmd)
	rootCmd.AddCommand(formsCmd)
}

func runFormsList(cmd *cobra.Command, _ []string) error {
	if formsGateway == nil {
		return errNotConfigured
	}

	pageSize := formsListPageSize
	if pageSize == 0 && settingsStore != nil {
		if settings, err := settingsStore.Load(); err == nil {
			pageSize = settings.PageSize
		}
	}
	if pageSize == 0 {
		pageSize = 100
	}

	list, err := formsGateway.ListForms(cmd.Context(), pageSize, formsListPageToken)
	if err != nil {
		return err
	}

	if len(list.Forms) == 0 {
		cmd.Println("No forms found.")
		return nil
	}

	rows := make([][]string, 0, len(list.Forms))
	for _, f := range list.Forms {
		rows = append(rows, []string{f.FormID, f.Title, strconv.Itoa(f.ResponseCount)})
	}
	if err := emit(cmd, list, []string{"ID", "Title", "Responses"}, rows); err != nil {
		return err
	}
	if list.NextPageToken != "" {
		cmd.Printf("More results: --page-token %s\n", list.NextPageToken)
	}
	return nil
}

func runFormsCreate(cmd *cobra.Command, _ []string) error {
	if formsGateway == nil {
		return errNotConfigured
	}

	result, err := formsGateway.CreateForm(cmd.Context(), formsCreateTitle, formsCreateDescription)
	if err != nil {
		return err
	}

	cmd.Printf("Created form %s\n", result.FormID)
	cmd.Printf("  Edit:    %s\n", result.EditURI)
	cmd.Printf("  Respond: %s\n", result.ResponderURI)
	return nil
}

func runFormsGet(cmd *cobra.Command, args []string) error {
	if formsGateway == nil {
		return errNotConfigured
	}

	detail, err := formsGateway.GetForm(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(detail.Items))
	for _, item := range detail.Items {
		kind := "display"
		switch {
		case item.PageBreak:
			kind = "section"
		case item.Question != nil:
			kind = string(item.Question.Type)
		}
		required := ""
		if item.Question != nil && item.Question.Required {
			required = "yes"
		}
		rows = append(rows, []string{item.ItemID, item.Title, kind, required})
	}

	cmd.Printf("%s (%s)\n", detail.Info.Title, detail.FormID)
	if detail.Info.Description != "" {
		cmd.Println(detail.Info.Description)
	}
	if detail.ResponderURI != "" {
		cmd.Printf("Respond: %s\n", detail.ResponderURI)
	}
	if len(rows) == 0 {
		cmd.Println("No items.")
		return nil
	}
	return emit(cmd, detail, []string{"Item ID", "Title", "Type", "Required"}, rows)
}

func runFormsUpdate(cmd *cobra.Command, args []string) error {
	if formsGateway == nil {
		return errNotConfigured
	}

	var title, description *string
	if cmd.Flags().Changed("title") {
		title = &formsUpdateTitle
	}
	if cmd.Flags().Changed("description") {
		description = &formsUpdateDescription
	}
	if title == nil && description == nil {
		return fmt.Errorf("nothing to update: pass --title and/or --description")
	}

	detail, err := formsGateway.UpdateForm(cmd.Context(), args[0], title, description)
	if err != nil {
		return err
	}

	cmd.Printf("Updated form %s: %s\n", detail.FormID, detail.Info.Title)
	return nil
}

func runFormsDelete(cmd *cobra.Command, args []string) error {
	if formsGateway == nil {
		return errNotConfigured
	}

	if !formsDeleteYes {
		confirmed, err := confirm(cmd, fmt.Sprintf("Delete form %s?", args[0]))
		if err != nil {
			return err
		}
		if !confirmed {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := formsGateway.DeleteForm(cmd.Context(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Deleted form %s\n", args[0])
	return nil
}

func runFormsDuplicate(cmd *cobra.Command, args []string) error {
	if duplicateService == nil {
		return errNotConfigured
	}

	result, err := duplicateService.Duplicate(cmd.Context(), args[0], formsDuplicateTitle, formsDuplicatePersonalize)
	if result != nil && result.NewFormID != "" {
		cmd.Printf("Created copy %s (%d/%d items)\n", result.NewFormID, result.CopiedItems, result.TotalItems)
		if formsDuplicatePersonalize != "" {
			cmd.Printf("Personalized %d items for %q\n", result.ItemsPersonalized, formsDuplicatePersonalize)
		}
		cmd.Printf("  Edit: %s\n", result.EditURI)
	}
	return err
}

// confirm asks a yes/no question on the command's input.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	cmd.Printf("%s [y/N]: ", question)

	var answer string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &answer); err != nil {
		return false, nil
	}
	switch answer {
	case "y", "Y", "yes", "YES":
		return true, nil
	}
	return false, nil
}

// parsePosition converts a position flag value; -1 appends.
func parsePosition(s string) (int, error) {
	if s == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid position %q: must be a non-negative index", s)
	}
	return n, nil
}
