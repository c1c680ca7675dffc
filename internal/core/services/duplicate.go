package services

import (
	"context"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driving"
	"github.com/custodia-labs/gtools-cli/internal/logger"
)

// Ensure DuplicateService implements the interface.
var _ driving.DuplicateService = (*DuplicateService)(nil)

// Placeholders recognized by personalization, substituted in form
// info and item text.
var Placeholders = []string{"NAME", "Employee Name"}

// DuplicateService copies forms, optionally substituting placeholders
// in the copy.
type DuplicateService struct {
	gateway driven.FormsGateway
}

// NewDuplicateService creates a duplicate service.
func NewDuplicateService(gateway driven.FormsGateway) *DuplicateService {
	return &DuplicateService{gateway: gateway}
}

// Duplicate copies the form. When personalizeName is non-empty, the
// placeholders are replaced with it in the new form's info and items.
// The copy and the personalization run as separate gateway calls; on
// a mid-way failure the partial result is returned with the error so
// the caller can report what exists.
func (s *DuplicateService) Duplicate(ctx context.Context, formID, newTitle, personalizeName string) (*domain.DuplicateResult, error) {
	result, err := s.gateway.Duplicate(ctx, formID, newTitle)
	if err != nil {
		return result, err
	}

	if personalizeName == "" {
		return result, nil
	}

	replacements := make(map[string]string, len(Placeholders))
	for _, p := range Placeholders {
		replacements[p] = personalizeName
	}

	logger.Debug("personalizing %s for %q", result.NewFormID, personalizeName)
	personalized, err := s.gateway.Personalize(ctx, result.NewFormID, replacements)
	if personalized != nil {
		result.ItemsPersonalized = personalized.ItemsUpdated
	}
	if err != nil {
		return result, err
	}

	return result, nil
}
