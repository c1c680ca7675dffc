// Package mcp exposes the forms and sheets operations over the Model
// Context Protocol, so AI assistants can create, edit, and read forms
// directly.
package mcp

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// Sentinel errors for missing port wiring.
var (
	ErrMissingFormsGateway     = errors.New("mcp: forms gateway is required")
	ErrMissingSheetsGateway    = errors.New("mcp: sheets gateway is not configured")
	ErrMissingTemplateService  = errors.New("mcp: template service is not configured")
	ErrMissingDuplicateService = errors.New("mcp: duplicate service is not configured")
)

// requireID rejects a blank resource identifier before any remote
// call. name is the input field reported back to the client.
func requireID(name, value string) error {
	if !domain.ValidResourceID(value) {
		return fmt.Errorf("%s must not be blank", name)
	}
	return nil
}

// requireItemIDs validates the form/item ID pair of item-level tools.
func requireItemIDs(formID, itemID string) error {
	if err := requireID("form_id", formID); err != nil {
		return err
	}
	return requireID("item_id", itemID)
}
