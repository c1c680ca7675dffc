package mcp

import (
	"bytes"
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
	"github.com/custodia-labs/gtools-cli/internal/core/services"
)

// ListResponsesInput is the input schema for the list_responses tool.
type ListResponsesInput struct {
	FormID    string `json:"form_id" jsonschema:"the form ID"`
	PageSize  int64  `json:"page_size,omitempty" jsonschema:"maximum number of responses to return"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token from a previous listing to continue from"`
}

// ListResponsesOutput is the output schema for the list_responses tool.
type ListResponsesOutput struct {
	Responses     []ResponseOutput `json:"responses"`
	Count         int              `json:"count"`
	NextPageToken string           `json:"next_page_token,omitempty"`
}

// ResponseOutput is one submitted response.
type ResponseOutput struct {
	ResponseID      string            `json:"response_id"`
	CreateTime      string            `json:"create_time"`
	RespondentEmail string            `json:"respondent_email,omitempty"`
	Answers         map[string]string `json:"answers,omitempty"`
}

func toResponseOutput(r domain.ResponseSummary) ResponseOutput {
	return ResponseOutput{
		ResponseID:      r.ResponseID,
		CreateTime:      r.CreateTime,
		RespondentEmail: r.RespondentEmail,
		Answers:         r.Answers,
	}
}

func (s *Server) handleListResponses(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListResponsesInput,
) (*mcp.CallToolResult, ListResponsesOutput, error) {
	if err := requireID("form_id", input.FormID); err != nil {
		return nil, ListResponsesOutput{}, err
	}

	list, err := s.ports.Forms.ListResponses(ctx, input.FormID, input.PageSize, input.PageToken)
	if err != nil {
		return nil, ListResponsesOutput{}, err
	}

	output := ListResponsesOutput{
		Responses:     make([]ResponseOutput, len(list.Responses)),
		Count:         len(list.Responses),
		NextPageToken: list.NextPageToken,
	}
	for i, r := range list.Responses {
		output.Responses[i] = toResponseOutput(r)
	}
	return nil, output, nil
}

// GetResponseInput is the input schema for the get_response tool.
type GetResponseInput struct {
	FormID     string `json:"form_id" jsonschema:"the form ID"`
	ResponseID string `json:"response_id" jsonschema:"the response ID"`
}

func (s *Server) handleGetResponse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetResponseInput,
) (*mcp.CallToolResult, ResponseOutput, error) {
	if err := requireID("form_id", input.FormID); err != nil {
		return nil, ResponseOutput{}, err
	}
	if err := requireID("response_id", input.ResponseID); err != nil {
		return nil, ResponseOutput{}, err
	}

	resp, err := s.ports.Forms.GetResponse(ctx, input.FormID, input.ResponseID)
	if err != nil {
		return nil, ResponseOutput{}, err
	}
	return nil, toResponseOutput(*resp), nil
}

// ExportResponsesInput is the input schema for the export_responses_csv tool.
type ExportResponsesInput struct {
	FormID       string `json:"form_id" jsonschema:"the form ID"`
	NoTimestamps bool   `json:"no_timestamps,omitempty" jsonschema:"omit the Timestamp column"`
	IncludeEmail bool   `json:"include_email,omitempty" jsonschema:"include the respondent email column"`
}

// ExportResponsesOutput is the output schema for the export_responses_csv tool.
type ExportResponsesOutput struct {
	CSV      string `json:"csv"`
	RowCount int    `json:"row_count"`
}

func (s *Server) handleExportResponsesCSV(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportResponsesInput,
) (*mcp.CallToolResult, ExportResponsesOutput, error) {
	if err := requireID("form_id", input.FormID); err != nil {
		return nil, ExportResponsesOutput{}, err
	}

	result, err := s.ports.Forms.ExportResponsesCSV(ctx, input.FormID, !input.NoTimestamps, input.IncludeEmail)
	if err != nil {
		return nil, ExportResponsesOutput{}, err
	}
	return nil, ExportResponsesOutput{CSV: result.CSV, RowCount: result.RowCount}, nil
}

// ApplyTemplateInput is the input schema for the apply_template tool.
type ApplyTemplateInput struct {
	Title       string          `json:"title" jsonschema:"the form title"`
	Description string          `json:"description,omitempty" jsonschema:"the form description"`
	Questions   []QuestionInput `json:"questions" jsonschema:"the questions to create, in order"`
}

// ApplyTemplateOutput is the output schema for the apply_template tool.
type ApplyTemplateOutput struct {
	FormID         string `json:"form_id"`
	ResponderURI   string `json:"responder_uri"`
	EditURI        string `json:"edit_uri"`
	QuestionsAdded int    `json:"questions_added"`
}

func (s *Server) handleApplyTemplate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ApplyTemplateInput,
) (*mcp.CallToolResult, ApplyTemplateOutput, error) {
	if s.ports.Template == nil {
		return nil, ApplyTemplateOutput{}, ErrMissingTemplateService
	}

	tpl := domain.FormTemplate{
		Form:      domain.FormInfo{Title: input.Title, Description: input.Description},
		Questions: make([]domain.QuestionSpec, len(input.Questions)),
	}
	for i, q := range input.Questions {
		// The service validates every question before any remote call;
		// only the type needs parsing here.
		qt, err := domain.ParseQuestionType(q.Type)
		if err != nil {
			return nil, ApplyTemplateOutput{}, &domain.TemplateError{Index: i, Reason: err.Error()}
		}
		tpl.Questions[i] = domain.QuestionSpec{
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
		}
	}

	result, err := s.ports.Template.Apply(ctx, tpl)
	if err != nil {
		// A partial result still names the created form.
		if result != nil && result.FormID != "" {
			return nil, ApplyTemplateOutput{
				FormID:         result.FormID,
				ResponderURI:   result.ResponderURI,
				EditURI:        result.EditURI,
				QuestionsAdded: result.QuestionsAdded,
			}, err
		}
		return nil, ApplyTemplateOutput{}, err
	}
	return nil, ApplyTemplateOutput{
		FormID:         result.FormID,
		ResponderURI:   result.ResponderURI,
		EditURI:        result.EditURI,
		QuestionsAdded: result.QuestionsAdded,
	}, nil
}

// ExportTemplateInput is the input schema for the export_template tool.
type ExportTemplateInput struct {
	FormID string `json:"form_id" jsonschema:"the form to export"`
}

// ExportTemplateOutput is the output schema for the export_template tool.
type ExportTemplateOutput struct {
	YAML string `json:"yaml"`
}

func (s *Server) handleExportTemplate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportTemplateInput,
) (*mcp.CallToolResult, ExportTemplateOutput, error) {
	if s.ports.Template == nil {
		return nil, ExportTemplateOutput{}, ErrMissingTemplateService
	}
	if err := requireID("form_id", input.FormID); err != nil {
		return nil, ExportTemplateOutput{}, err
	}

	tpl, err := s.ports.Template.Export(ctx, input.FormID)
	if err != nil {
		return nil, ExportTemplateOutput{}, err
	}

	var buf bytes.Buffer
	if err := services.EncodeTemplate(&buf, tpl); err != nil {
		return nil, ExportTemplateOutput{}, err
	}
	return nil, ExportTemplateOutput{YAML: buf.String()}, nil
}
