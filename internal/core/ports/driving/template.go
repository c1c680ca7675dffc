package driving

import (
	"context"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// TemplateService expands declarative templates into gateway calls and
// inverts live forms back into templates.
type TemplateService interface {
	// Apply validates every question of the template before issuing any
	// remote call, then creates the form and adds the questions in
	// order. Validation failures are TemplateErrors carrying the
	// offending question index.
	Apply(ctx context.Context, tpl domain.FormTemplate) (*domain.CreateResult, error)

	// Export reads a live form and produces an equivalent template.
	Export(ctx context.Context, formID string) (*domain.FormTemplate, error)
}

// DuplicateService copies forms with optional placeholder substitution.
type DuplicateService interface {
	// Duplicate copies the form. When personalizeName is non-empty, the
	// standard placeholders are replaced with it in the copy. The copy
	// and the personalization patches are not atomic: a failure after
	// the copy returns the partial result alongside the error.
	Duplicate(ctx context.Context, formID, newTitle, personalizeName string) (*domain.DuplicateResult, error)
}

// AuthService verifies and bootstraps credentials.
type AuthService interface {
	// Check loads the credentials and, when complete, performs one
	// token refresh to verify them. The returned report is printable.
	Check(ctx context.Context) (*AuthReport, error)
}

// AuthReport is the outcome of an auth check.
type AuthReport struct {
	Path        string
	MissingKeys []string
	TokenExpiry string
}

// Authenticated reports whether the check reached a valid token.
func (r *AuthReport) Authenticated() bool {
	return len(r.MissingKeys) == 0 && r.TokenExpiry != ""
}
