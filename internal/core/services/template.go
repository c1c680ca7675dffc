package services

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driving"
	"github.com/custodia-labs/gtools-cli/internal/logger"
)

// Ensure TemplateService implements the interface.
var _ driving.TemplateService = (*TemplateService)(nil)

// TemplateService applies declarative templates to the forms gateway
// and exports live forms back into templates.
type TemplateService struct {
	gateway driven.FormsGateway
}

// NewTemplateService creates a template service.
func NewTemplateService(gateway driven.FormsGateway) *TemplateService {
	return &TemplateService{gateway: gateway}
}

// DecodeTemplate parses a YAML template. Unknown fields are rejected
// so typos surface instead of silently dropping settings.
func DecodeTemplate(r io.Reader) (*domain.FormTemplate, error) {
	var tpl domain.FormTemplate
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tpl); err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &tpl, nil
}

// EncodeTemplate renders a template as YAML.
func EncodeTemplate(w io.Writer, tpl *domain.FormTemplate) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tpl); err != nil {
		return fmt.Errorf("encode template: %w", err)
	}
	return enc.Close()
}

// Validate checks the whole template. The first invalid question
// aborts with its index; nothing is sent to the gateway beforehand.
func (s *TemplateService) Validate(tpl domain.FormTemplate) error {
	if tpl.Form.Title == "" {
		return &domain.TemplateError{Index: -1, Reason: "form title is required"}
	}
	for i, q := range tpl.Questions {
		if err := q.Validate(); err != nil {
			return &domain.TemplateError{Index: i, Reason: err.Error()}
		}
	}
	return nil
}

// Apply validates every question, creates the form, and adds the
// questions in template order. Question creation failures leave the
// partially built form in place; the result counts what was added.
func (s *TemplateService) Apply(ctx context.Context, tpl domain.FormTemplate) (*domain.CreateResult, error) {
	if err := s.Validate(tpl); err != nil {
		return nil, err
	}

	logger.Debug("applying template %q with %d questions", tpl.Form.Title, len(tpl.Questions))

	result, err := s.gateway.CreateForm(ctx, tpl.Form.Title, tpl.Form.Description)
	if err != nil {
		return nil, err
	}

	for i, q := range tpl.Questions {
		q.Position = i
		if err := s.gateway.AddQuestion(ctx, result.FormID, q); err != nil {
			return result, fmt.Errorf("add question %d: %w", i, err)
		}
		result.QuestionsAdded++
	}

	return result, nil
}

// Export reads a live form and produces an equivalent template.
// Items the template format cannot express (images, videos, page
// breaks) are dropped from the output.
func (s *TemplateService) Export(ctx context.Context, formID string) (*domain.FormTemplate, error) {
	detail, err := s.gateway.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	tpl := &domain.FormTemplate{Form: detail.Info}
	for _, item := range detail.Items {
		if item.Question == nil {
			continue
		}
		tpl.Questions = append(tpl.Questions, *item.Question)
	}

	return tpl, nil
}
