package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_forms",
		Description: "List the user's Google Forms, most recently modified first",
	}, s.handleListForms)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_form",
		Description: "Create a new, empty Google Form",
	}, s.handleCreateForm)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_form",
		Description: "Get a form's metadata and item structure",
	}, s.handleGetForm)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_form",
		Description: "Update a form's title and/or description",
	}, s.handleUpdateForm)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_form",
		Description: "Move a form to the Drive trash",
	}, s.handleDeleteForm)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "duplicate_form",
		Description: "Copy a form, optionally replacing name placeholders in the copy",
	}, s.handleDuplicateForm)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_question",
		Description: "Add a question to an existing form",
	}, s.handleAddQuestion)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_question",
		Description: "Update a form item's title, description, or required flag",
	}, s.handleUpdateQuestion)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_question",
		Description: "Delete an item from a form",
	}, s.handleDeleteQuestion)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "move_question",
		Description: "Move a form item to a new zero-based position",
	}, s.handleMoveQuestion)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_section",
		Description: "Add a section break to a form",
	}, s.handleAddSection)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_responses",
		Description: "List the submitted responses of a form",
	}, s.handleListResponses)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_response",
		Description: "Get one response with its answers keyed by question title",
	}, s.handleGetResponse)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_responses_csv",
		Description: "Export all responses of a form as CSV text",
	}, s.handleExportResponsesCSV)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "apply_template",
		Description: "Create a complete form from a declarative template",
	}, s.handleApplyTemplate)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_template",
		Description: "Export a live form as a reusable YAML template",
	}, s.handleExportTemplate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_spreadsheet",
		Description: "Get a spreadsheet's metadata and the sheets it contains",
	}, s.handleGetSpreadsheet)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_sheet",
		Description: "Read cell values from a spreadsheet range",
	}, s.handleReadSheet)
}

// ListFormsInput is the input schema for the list_forms tool.
type ListFormsInput struct {
	PageSize  int64  `json:"page_size,omitempty" jsonschema:"maximum number of forms to return (default 100)"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token from a previous listing to continue from"`
}

// ListFormsOutput is the output schema for the list_forms tool.
type ListFormsOutput struct {
	Forms         []FormSummaryOutput `json:"forms"`
	Count         int                 `json:"count"`
	NextPageToken string              `json:"next_page_token,omitempty"`
}

// FormSummaryOutput is one form in a listing.
type FormSummaryOutput struct {
	FormID        string `json:"form_id"`
	Title         string `json:"title"`
	ResponderURI  string `json:"responder_uri,omitempty"`
	ResponseCount int    `json:"response_count"`
}

func (s *Server) handleListForms(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListFormsInput,
) (*mcp.CallToolResult, ListFormsOutput, error) {
	list, err := s.ports.Forms.ListForms(ctx, input.PageSize, input.PageToken)
	if err != nil {
		return nil, ListFormsOutput{}, err
	}

	output := ListFormsOutput{
		Forms:         make([]FormSummaryOutput, len(list.Forms)),
		Count:         len(list.Forms),
		NextPageToken: list.NextPageToken,
	}
	for i, f := range list.Forms {
		output.Forms[i] = FormSummaryOutput{
			FormID:        f.FormID,
			Title:         f.Title,
			ResponderURI:  f.ResponderURI,
			ResponseCount: f.ResponseCount,
		}
	}
	return nil, output, nil
}

// CreateFormInput is the input schema for the create_form tool.
type CreateFormInput struct {
	Title       string `json:"title" jsonschema:"the form title"`
	Description string `json:"description,omitempty" jsonschema:"the form description"`
}

// CreateFormOutput is the output schema for the create_form tool.
type CreateFormOutput struct {
	FormID       string `json:"form_id"`
	ResponderURI string `json:"responder_uri"`
	EditURI      string `json:"edit_uri"`
}

func (s *Server) handleCreateForm(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateFormInput,
) (*mcp.CallToolResult, CreateFormOutput, error) {
	result, err := s.ports.Forms.CreateForm(ctx, input.Title, input.Description)
	if err != nil {
		return nil, CreateFormOutput{}, err
	}
	return nil, CreateFormOutput{
		FormID:       result.FormID,
		ResponderURI: result.ResponderURI,
		EditURI:      result.EditURI,
	}, nil
}

// GetFormInput is the input schema for the get_form tool.
type GetFormInput struct {
	FormID string `json:"form_id" jsonschema:"the form ID"`
}

// GetFormOutput is the output schema for the get_form tool.
type GetFormOutput struct {
	FormID       string           `json:"form_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	ResponderURI string           `json:"responder_uri,omitempty"`
	Items        []FormItemOutput `json:"items"`
}

// FormItemOutput is one item of a form's structure.
type FormItemOutput struct {
	ItemID       string   `json:"item_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Type         string   `json:"type,omitempty"`
	Required     bool     `json:"required,omitempty"`
	Options      []string `json:"options,omitempty"`
	SectionBreak bool     `json:"section_break,omitempty"`
}

func toFormItemOutputs(items []domain.FormItem) []FormItemOutput {
	out := make([]FormItemOutput, len(items))
	for i, it := range items {
		out[i] = FormItemOutput{
			ItemID:       it.ItemID,
			Title:        it.Title,
			Description:  it.Description,
			SectionBreak: it.PageBreak,
		}
		if it.Question != nil {
			out[i].Type = string(it.Question.Type)
			out[i].Required = it.Question.Required
			out[i].Options = it.Question.Options
		}
	}
	return out
}

func (s *Server) handleGetForm(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetFormInput,
) (*mcp.CallToolResult, GetFormOutput, error) {
	if err := requireID("form_id", input.FormID); err != nil {
		return nil, GetFormOutput{}, err
	}

	detail, err := s.ports.Forms.GetForm(ctx, input.FormID)
	if err != nil {
		return nil, GetFormOutput{}, err
	}
	return nil, GetFormOutput{
		FormID:       detail.FormID,
		Title:        detail.Info.Title,
		Description:  detail.Info.Description,
		ResponderURI: detail.ResponderURI,
		Items:        toFormItemOutputs(detail.Items),
	}, nil
}

// UpdateFormInput is the input schema for the update_form tool.
type UpdateFormInput struct {
	FormID      string  `json:"form_id" jsonschema:"the form ID"`
	Title       *string `json:"title,omitempty" jsonschema:"new title; omit to leave unchanged"`
	Description *string `json:"description,omitempty" jsonschema:"new description; omit to leave unchanged"`
}

func (s *Server) handleUpdateForm(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateFormInput,
) (*mcp.CallToolResult, GetFormOutput, error) {
	if err := requireID("form_id", input.FormID); err != nil {
		return nil, GetFormOutput{}, err
	}

	detail, err := s.ports.Forms.UpdateForm(ctx, input.FormID, input.Title, input.Description)
	if err != nil {
		return nil, GetFormOutput{}, err
	}
	return nil, GetFormOutput{
		FormID:      detail.FormID,
		Title:       detail.Info.Title,
		Description: detail.Info.Description,
		Items:       toFormItemOutputs(detail.Items),
	}, nil
}

// DeleteFormInput is the input schema for the delete_form tool.
type DeleteFormInput struct {
	FormID string `json:"form_id" jsonschema:"the form ID to trash"`
}

// DeleteFormOutput is the output schema for the delete_form tool.
type DeleteFormOutput struct {
	Deleted bool `json:"deleted"`
}

func (s *Server) handleDeleteForm(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteFormInput,
) (*mcp.CallToolResult, DeleteFormOutput, error) {
	if err := requireID("form_id", input.FormID); err != nil {
		return nil, DeleteFormOutput{}, err
	}
	if err := s.ports.Forms.DeleteForm(ctx, input.FormID); err != nil {
		return nil, DeleteFormOutput{}, err
	}
	return nil, DeleteFormOutput{Deleted: true}, nil
}

// DuplicateFormInput is the input schema for the duplicate_form tool.
type DuplicateFormInput struct {
	FormID          string `json:"form_id" jsonschema:"the form to copy"`
	NewTitle        string `json:"new_title,omitempty" jsonschema:"title of the copy (default 'Copy of <original>')"`
	PersonalizeName string `json:"personalize_name,omitempty" jsonschema:"replace NAME placeholders in the copy with this value"`
}

// DuplicateFormOutput is the output schema for the duplicate_form tool.
type DuplicateFormOutput struct {
	NewFormID         string `json:"new_form_id"`
	ResponderURI      string `json:"responder_uri"`
	EditURI           string `json:"edit_uri"`
	CopiedItems       int    `json:"copied_items"`
	TotalItems        int    `json:"total_items"`
	ItemsPersonalized int    `json:"items_personalized,omitempty"`
}

func (s *Server) handleDuplicateForm(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DuplicateFormInput,
) (*mcp.CallToolResult, DuplicateFormOutput, error) {
	if s.ports.Duplicate == nil {
		return nil, DuplicateFormOutput{}, ErrMissingDuplicateService
	}
	if err := requireID("form_id", input.FormID); err != nil {
		return nil, DuplicateFormOutput{}, err
	}

	result, err := s.ports.Duplicate.Duplicate(ctx, input.FormID, input.NewTitle, input.PersonalizeName)
	if err != nil {
		return nil, DuplicateFormOutput{}, err
	}
	return nil, DuplicateFormOutput{
		NewFormID:         result.NewFormID,
		ResponderURI:      result.ResponderURI,
		EditURI:           result.EditURI,
		CopiedItems:       result.CopiedItems,
		TotalItems:        result.TotalItems,
		ItemsPersonalized: result.ItemsPersonalized,
	}, nil
}

// QuestionInput describes one question, shared by the add_question and
// apply_template tools.
type QuestionInput struct {
	Type        string   `json:"type" jsonschema:"question type: SHORT_ANSWER, PARAGRAPH, MULTIPLE_CHOICE, CHECKBOXES, DROPDOWN, LINEAR_SCALE, DATE, TIME, FILE_UPLOAD, MULTIPLE_CHOICE_GRID, CHECKBOX_GRID, or RATING"`
	Title       string   `json:"title" jsonschema:"the question title"`
	Description string   `json:"description,omitempty" jsonschema:"the question description"`
	Required    bool     `json:"required,omitempty" jsonschema:"whether an answer is required"`
	Options     []string `json:"options,omitempty" jsonschema:"options for choice types"`
	Low         int      `json:"low,omitempty" jsonschema:"scale lower bound for LINEAR_SCALE"`
	High        int      `json:"high,omitempty" jsonschema:"scale upper bound for LINEAR_SCALE and RATING"`
	LowLabel    string   `json:"low_label,omitempty" jsonschema:"label for the lower bound"`
	HighLabel   string   `json:"high_label,omitempty" jsonschema:"label for the upper bound"`
	Rows        []string `json:"rows,omitempty" jsonschema:"rows for grid types"`
	Columns     []string `json:"columns,omitempty" jsonschema:"columns for grid types"`
}

func (q QuestionInput) toSpec(position int) (domain.QuestionSpec, error) {
	qt, err := domain.ParseQuestionType(q.Type)
	if err != nil {
		return domain.QuestionSpec{}, err
	}
	spec := domain.QuestionSpec{
		Type:        qt,
		Title:       q.Title,
		Description: q.Description,
		Required:    q.Required,
		Options:     q.Options,
		Low:         q.Low,
		High:        q.High,
		LowLabel:    q.LowLabel,
		HighLabel:   q.HighLabel,
		Rows:        q.Rows,
		Columns:     q.Columns,
		Position:    position,
	}
	return spec, spec.Validate()
}

// AddQuestionInput is the input schema for the add_question tool.
type AddQuestionInput struct {
	FormID string `json:"form_id" jsonschema:"the form ID"`
	QuestionInput
	Position *int `json:"position,omitempty" jsonschema:"zero-based insert position; omit to append"`
}

// AddQuestionOutput is the output schema for the add_question tool.
type AddQuestionOutput struct {
	FormID string `json:"form_id"`
	Type   string `json:"type"`
	Title  string `json:"title"`
}

func (s *Server) handleAddQuestion(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddQuestionInput,
) (*mcp.CallToolResult, AddQuestionOutput, error) {
	if err := requireID("form_id", input.FormID); err != nil {
		return nil, AddQuestionOutput{}, err
	}

	position := -1
	if input.Position != nil {
		position = *input.Position
	}
	spec, err := input.toSpec(position)
	if err != nil {
		return nil, AddQuestionOutput{}, err
	}

	if err := s.ports.Forms.AddQuestion(ctx, input.FormID, spec); err != nil {
		return nil, AddQuestionOutput{}, err
	}
	return nil, AddQuestionOutput{
		FormID: input.FormID,
		Type:   string(spec.Type),
		Title:  spec.Title,
	}, nil
}

// UpdateQuestionInput is the input schema for the update_question tool.
type UpdateQuestionInput struct {
	FormID      string  `json:"form_id" jsonschema:"the form ID"`
	ItemID      string  `json:"item_id" jsonschema:"the item to update"`
	Title       *string `json:"title,omitempty" jsonschema:"new title; omit to leave unchanged"`
	Description *string `json:"description,omitempty" jsonschema:"new description; omit to leave unchanged"`
	Required    *bool   `json:"required,omitempty" jsonschema:"new required flag; omit to leave unchanged"`
}

// ItemOutput is the output schema for item-level mutations.
type ItemOutput struct {
	FormID string `json:"form_id"`
	ItemID string `json:"item_id"`
}

func (s *Server) handleUpdateQuestion(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateQuestionInput,
) (*mcp.CallToolResult, ItemOutput, error) {
	if err := requireItemIDs(input.FormID, input.ItemID); err != nil {
		return nil, ItemOutput{}, err
	}

	patch := domain.ItemPatch{
		Title:       input.Title,
		Description: input.Description,
		Required:    input.Required,
	}
	if err := s.ports.Forms.UpdateItem(ctx, input.FormID, input.ItemID, patch); err != nil {
		return nil, ItemOutput{}, err
	}
	return nil, ItemOutput{FormID: input.FormID, ItemID: input.ItemID}, nil
}

// DeleteQuestionInput is the input schema for the delete_question tool.
type DeleteQuestionInput struct {
	FormID string `json:"form_id" jsonschema:"the form ID"`
	ItemID string `json:"item_id" jsonschema:"the item to delete"`
}

func (s *Server) handleDeleteQuestion(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteQuestionInput,
) (*mcp.CallToolResult, ItemOutput, error) {
	if err := requireItemIDs(input.FormID, input.ItemID); err != nil {
		return nil, ItemOutput{}, err
	}
	if err := s.ports.Forms.DeleteItem(ctx, input.FormID, input.ItemID); err != nil {
		return nil, ItemOutput{}, err
	}
	return nil, ItemOutput{FormID: input.FormID, ItemID: input.ItemID}, nil
}

// MoveQuestionInput is the input schema for the move_question tool.
type MoveQuestionInput struct {
	FormID   string `json:"form_id" jsonschema:"the form ID"`
	ItemID   string `json:"item_id" jsonschema:"the item to move"`
	NewIndex int    `json:"new_index" jsonschema:"the zero-based target position"`
}

func (s *Server) handleMoveQuestion(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MoveQuestionInput,
) (*mcp.CallToolResult, ItemOutput, error) {
	if err := requireItemIDs(input.FormID, input.ItemID); err != nil {
		return nil, ItemOutput{}, err
	}
	if err := s.ports.Forms.MoveItem(ctx, input.FormID, input.ItemID, input.NewIndex); err != nil {
		return nil, ItemOutput{}, err
	}
	return nil, ItemOutput{FormID: input.FormID, ItemID: input.ItemID}, nil
}

// AddSectionInput is the input schema for the add_section tool.
type AddSectionInput struct {
	FormID      string `json:"form_id" jsonschema:"the form ID"`
	Title       string `json:"title" jsonschema:"the section title"`
	Description string `json:"description,omitempty" jsonschema:"the section description"`
	Position    *int   `json:"position,omitempty" jsonschema:"zero-based insert position; omit to append"`
}

// AddSectionOutput is the output schema for the add_section tool.
type AddSectionOutput struct {
	FormID string `json:"form_id"`
	Title  string `json:"title"`
}

func (s *Server) handleAddSection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddSectionInput,
) (*mcp.CallToolResult, AddSectionOutput, error) {
	if err := requireID("form_id", input.FormID); err != nil {
		return nil, AddSectionOutput{}, err
	}

	position := -1
	if input.Position != nil {
		position = *input.Position
	}
	if err := s.ports.Forms.AddSection(ctx, input.FormID, input.Title, input.Description, position); err != nil {
		return nil, AddSectionOutput{}, err
	}
	return nil, AddSectionOutput{FormID: input.FormID, Title: input.Title}, nil
}
