package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gtools-cli/internal/core/services"
)

const (
	// uriScheme is the custom URI scheme for gtools resources.
	uriScheme = "gtools://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing forms.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "forms",
		Name:        "forms",
		Description: "List of the user's Google Forms",
		MIMEType:    "application/json",
	}, s.handleFormsResource)

	// Template for form structure.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "forms/{formId}",
		Name:        "form-structure",
		Description: "Metadata and items of a specific form",
		MIMEType:    "application/json",
	}, s.handleFormResource)

	// Template for the YAML rendition of a form.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "forms/{formId}/template",
		Name:        "form-template",
		Description: "A form rendered as a reusable YAML template",
		MIMEType:    "application/yaml",
	}, s.handleFormTemplateResource)
}

// handleFormsResource returns a list of all forms.
func (s *Server) handleFormsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	list, err := s.ports.Forms.ListForms(ctx, 0, "")
	if err != nil {
		return nil, fmt.Errorf("listing forms: %w", err)
	}

	// Build simplified form list.
	type formInfo struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Responses int    `json:"responses"`
	}

	infos := make([]formInfo, len(list.Forms))
	for i, f := range list.Forms {
		infos[i] = formInfo{
			ID:        f.FormID,
			Title:     f.Title,
			Responses: f.ResponseCount,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling forms: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFormResource returns the structure of a specific form.
func (s *Server) handleFormResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract formId from URI: gtools://forms/{formId}
	formID := extractFormID(req.Params.URI)
	if formID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	detail, err := s.ports.Forms.GetForm(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("getting form: %w", err)
	}

	output := GetFormOutput{
		FormID:       detail.FormID,
		Title:        detail.Info.Title,
		Description:  detail.Info.Description,
		ResponderURI: detail.ResponderURI,
		Items:        toFormItemOutputs(detail.Items),
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling form: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFormTemplateResource returns a form rendered as a YAML template.
func (s *Server) handleFormTemplateResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Template == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract formId from URI: gtools://forms/{formId}/template
	formID := extractTemplateFormID(req.Params.URI)
	if formID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	tpl, err := s.ports.Template.Export(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("exporting template: %w", err)
	}

	var buf bytes.Buffer
	if err := services.EncodeTemplate(&buf, tpl); err != nil {
		return nil, fmt.Errorf("encoding template: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/yaml",
			Text:     buf.String(),
		}},
	}, nil
}

// extractFormID extracts the form ID from a URI like gtools://forms/{formId}.
func extractFormID(uri string) string {
	const prefix = uriScheme + "forms/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

// extractTemplateFormID extracts the form ID from a URI like
// gtools://forms/{formId}/template.
func extractTemplateFormID(uri string) string {
	const prefix = uriScheme + "forms/"
	const suffix = "/template"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
