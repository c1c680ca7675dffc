package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

var formsAddQuestionCmd = &cobra.Command{
	Use:   "add-question [form-id]",
	Short: "Add a question to a form",
	Long: `Add one question to an existing form.

Supported types: ` + questionTypeList() + `

Examples:
  gtools forms add-question <form-id> --type SHORT_ANSWER --title "Full name" --required
  gtools forms add-question <form-id> --type MULTIPLE_CHOICE --title "Team" --options "Eng,Sales,Ops"
  gtools forms add-question <form-id> --type LINEAR_SCALE --title "Satisfaction" --low 1 --high 5
  gtools forms add-question <form-id> --type MULTIPLE_CHOICE_GRID --title "Rate each" \
    --rows "Speed,Quality" --columns "1,2,3"`,
	Args: exactIDs(1),
	RunE: runAddQuestion,
}

var formsDeleteQuestionCmd = &cobra.Command{
	Use:   "delete-question [form-id] [item-id]",
	Short: "Delete an item from a form",
	Args:  exactIDs(2),
	RunE:  runDeleteQuestion,
}

var formsMoveQuestionCmd = &cobra.Command{
	Use:   "move-question [form-id] [item-id] [new-index]",
	Short: "Move an item to a new position",
	Args:  exactIDs(3),
	RunE:  runMoveQuestion,
}

var formsAddSectionCmd = &cobra.Command{
	Use:   "add-section [form-id]",
	Short: "Add a section break to a form",
	Args:  exactIDs(1),
	RunE:  runAddSection,
}

var formsUpdateQuestionCmd = &cobra.Command{
	Use:   "update-question [form-id] [item-id]",
	Short: "Update an item's title, description, or required flag",
	Args:  exactIDs(2),
	RunE:  runUpdateQuestion,
}

var (
	addQuestionType        string
	addQuestionTitle       string
	addQuestionDescription string
	addQuestionRequired    bool
	addQuestionOptions     string
	addQuestionLow         int
	addQuestionHigh        int
	addQuestionLowLabel    string
	addQuestionHighLabel   string
	addQuestionRows        string
	addQuestionColumns     string
	addQuestionPosition    string

	addSectionTitle       string
	addSectionDescription string
	addSectionPosition    string

	updateQuestionTitle       string
	updateQuestionDescription string
	updateQuestionRequired    bool
)

func questionTypeList() string {
	names := make([]string, len(domain.QuestionTypes))
	for i, t := range domain.QuestionTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func init() {
	f := formsAddQuestionCmd.Flags()
	f.StringVar(&addQuestionType, "type", "", "question type (required)")
	f.StringVarP(&addQuestionTitle, "title", "t", "", "question title (required)")
	f.StringVarP(&addQuestionDescription, "description", "d", "", "question description")
	f.BoolVar(&addQuestionRequired, "required", false, "mark the question as required")
	f.StringVar(&addQuestionOptions, "options", "", "comma-separated options for choice types")
	f.IntVar(&addQuestionLow, "low", 0, "scale lower bound")
	f.IntVar(&addQuestionHigh, "high", 0, "scale upper bound")
	f.StringVar(&addQuestionLowLabel, "low-label", "", "label for the lower bound")
	f.StringVar(&addQuestionHighLabel, "high-label", "", "label for the upper bound")
	f.StringVar(&addQuestionRows, "rows", "", "comma-separated grid rows")
	f.StringVar(&addQuestionColumns, "columns", "", "comma-separated grid columns")
	f.StringVar(&addQuestionPosition, "position", "", "zero-based insert position (default append)")
	_ = formsAddQuestionCmd.MarkFlagRequired("type")
	_ = formsAddQuestionCmd.MarkFlagRequired("title")

	formsAddSectionCmd.Flags().StringVarP(&addSectionTitle, "title", "t", "", "section title (required)")
	formsAddSectionCmd.Flags().StringVarP(&addSectionDescription, "description", "d", "", "section description")
	formsAddSectionCmd.Flags().StringVar(&addSectionPosition, "position", "", "zero-based insert position (default append)")
	_ = formsAddSectionCmd.MarkFlagRequired("title")

	formsUpdateQuestionCmd.Flags().StringVarP(&updateQuestionTitle, "title", "t", "", "new title")
	formsUpdateQuestionCmd.Flags().StringVarP(&updateQuestionDescription, "description", "d", "", "new description")
	formsUpdateQuestionCmd.Flags().BoolVar(&updateQuestionRequired, "required", false, "set the required flag")

	formsCmd.AddCommand(formsAddQuestionCmd)
	formsCmd.AddCommand(formsDeleteQuestionCmd)
	formsCmd.AddCommand(formsMoveQuestionCmd)
	formsCmd.AddCommand(formsAddSectionCmd)
	formsCmd.AddCommand(formsUpdateQuestionCmd)
}

// splitList parses a comma-separated flag value, trimming whitespace
// and dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runAddQuestion(cmd *cobra.Command, args []string) error {
	if formsGateway == nil {
		return errNotConfigured
	}

	qt, err := domain.ParseQuestionType(addQuestionType)
	if err != nil {
		return err
	}
	position, err := parsePosition(addQuestionPosition)
	if err != nil {
		return err
	}

	q := domain.QuestionSpec{
		Type:        qt,
		Title:       addQuestionTitle,
		Description: addQuestionDescription,
		Required:    addQuestionRequired,
		Options:     splitList(addQuestionOptions),
		Low:         addQuestionLow,
		High:        addQuestionHigh,
		LowLabel:    addQuestionLowLabel,
		HighLabel:   addQuestionHighLabel,
		Rows:        splitList(addQuestionRows),
		Columns:     splitList(addQuestionColumns),
		Position:    position,
	}
	if err := q.Validate(); err != nil {
		return err
	}

	if err := formsGateway.AddQuestion(cmd.Context(), args[0], q); err != nil {
		return err
	}
	cmd.Printf("Added %s question to form %s\n", q.Type, args[0])
	return nil
}

func runDeleteQuestion(cmd *cobra.Command, args []string) error {
	if formsGateway == nil {
		return errNotConfigured
	}

	if err := formsGateway.DeleteItem(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Deleted item %s from form %s\n", args[1], args[0])
	return nil
}

func runMoveQuestion(cmd *cobra.Command, args []string) error {
	if formsGateway == nil {
		return errNotConfigured
	}

	newIndex, err := strconv.Atoi(args[2])
	if err != nil || newIndex < 0 {
		return fmt.Errorf("invalid index %q: must be a non-negative integer", args[2])
	}

	if err := formsGateway.MoveItem(cmd.Context(), args[0], args[1], newIndex); err != nil {
		return err
	}
	cmd.Printf("Moved item %s to position %d\n", args[1], newIndex)
	return nil
}

func runAddSection(cmd *cobra.Command, args []string) error {
	if formsGateway == nil {
		return errNotConfigured
	}

	position, err := parsePosition(addSectionPosition)
	if err != nil {
		return err
	}

	if err := formsGateway.AddSection(cmd.Context(), args[0], addSectionTitle, addSectionDescription, position); err != nil {
		return err
	}
	cmd.Printf("Added section %q to form %s\n", addSectionTitle, args[0])
	return nil
}

func runUpdateQuestion(cmd *cobra.Command, args []string) error {
	if formsGateway == nil {
		return errNotConfigured
	}

	var patch domain.ItemPatch
	if cmd.Flags().Changed("title") {
		patch.Title = &updateQuestionTitle
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &updateQuestionDescription
	}
	if cmd.Flags().Changed("required") {
		patch.Required = &updateQuestionRequired
	}
	if patch.Title == nil && patch.Description == nil && patch.Required == nil {
		return fmt.Errorf("nothing to update: pass --title, --description, or --required")
	}

	if err := formsGateway.UpdateItem(cmd.Context(), args[0], args[1], patch); err != nil {
		return err
	}
	cmd.Printf("Updated item %s\n", args[1])
	return nil
}
