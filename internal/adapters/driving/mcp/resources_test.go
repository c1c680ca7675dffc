package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

func TestExtractFormID(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"valid form URI", "gtools://forms/abc123", "abc123"},
		{"template URI is not a form URI", "gtools://forms/abc123/template", ""},
		{"wrong scheme", "other://forms/abc123", ""},
		{"forms listing", "gtools://forms", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractFormID(tt.uri))
		})
	}
}

func TestExtractTemplateFormID(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"valid template URI", "gtools://forms/abc123/template", "abc123"},
		{"plain form URI", "gtools://forms/abc123", ""},
		{"wrong scheme", "other://forms/abc123/template", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTemplateFormID(tt.uri))
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	req := &mcp.ReadResourceRequest{}
	req.Params = &mcp.ReadResourceParams{URI: uri}
	return req
}

func TestServer_handleFormsResource(t *testing.T) {
	forms := &mockFormsGateway{
		list: &domain.FormList{
			Forms: []domain.FormSummary{
				{FormID: "f1", Title: "Survey", ResponseCount: 3},
			},
		},
	}
	server := newTestServer(t, &Ports{Forms: forms})

	result, err := server.handleFormsResource(context.Background(), readRequest("gtools://forms"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, `"id": "f1"`)
	assert.Contains(t, result.Contents[0].Text, `"title": "Survey"`)
}

func TestServer_handleFormResource(t *testing.T) {
	t.Run("returns the form structure", func(t *testing.T) {
		forms := &mockFormsGateway{
			detail: &domain.FormDetail{
				FormID: "f1",
				Info:   domain.FormInfo{Title: "Survey"},
				Items: []domain.FormItem{
					{ItemID: "i1", Title: "Name", Question: &domain.QuestionSpec{Type: domain.ShortAnswer}},
				},
			},
		}
		server := newTestServer(t, &Ports{Forms: forms})

		result, err := server.handleFormResource(context.Background(), readRequest("gtools://forms/f1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"form_id": "f1"`)
		assert.Contains(t, result.Contents[0].Text, `"type": "SHORT_ANSWER"`)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		server := newTestServer(t, &Ports{Forms: &mockFormsGateway{}})

		_, err := server.handleFormResource(context.Background(), readRequest("gtools://forms/a/b/c"))

		require.Error(t, err)
	})
}

func TestServer_handleFormTemplateResource(t *testing.T) {
	t.Run("renders the exported template as YAML", func(t *testing.T) {
		tplSvc := &mockTemplateService{
			tpl: &domain.FormTemplate{
				Form: domain.FormInfo{Title: "Survey"},
				Questions: []domain.QuestionSpec{
					{Type: domain.ShortAnswer, Title: "Name", Required: true},
				},
			},
		}
		server := newTestServer(t, &Ports{Forms: &mockFormsGateway{}, Template: tplSvc})

		result, err := server.handleFormTemplateResource(context.Background(), readRequest("gtools://forms/f1/template"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/yaml", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "title: Survey")
		assert.Contains(t, result.Contents[0].Text, "type: SHORT_ANSWER")
	})

	t.Run("missing template service is not found", func(t *testing.T) {
		server := newTestServer(t, &Ports{Forms: &mockFormsGateway{}})

		_, err := server.handleFormTemplateResource(context.Background(), readRequest("gtools://forms/f1/template"))

		require.Error(t, err)
	})
}
