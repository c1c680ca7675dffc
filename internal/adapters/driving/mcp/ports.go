package mcp

import (
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driving"
)

// Ports aggregates everything the MCP server drives. This provides a
// single injection point for dependency injection.
type Ports struct {
	// Forms is the gateway behind every form and response tool.
	Forms driven.FormsGateway

	// Sheets backs the spreadsheet tools.
	Sheets driven.SheetsGateway

	// Template applies and exports declarative form templates.
	Template driving.TemplateService

	// Duplicate copies forms with optional personalization.
	Duplicate driving.DuplicateService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Forms == nil {
		return ErrMissingFormsGateway
	}
	// Sheets, Template, and Duplicate are optional; their tools report
	// the missing wiring when invoked.
	return nil
}
