package driven

import (
	"context"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// FormsGateway is the outbound port to the Google Forms API (and the
// Drive calls that back listing, deletion, and name sync). Each method
// issues exactly one remote call unless documented otherwise.
type FormsGateway interface {
	CreateForm(ctx context.Context, title, description string) (*domain.CreateResult, error)
	ListForms(ctx context.Context, pageSize int64, pageToken string) (*domain.FormList, error)
	GetForm(ctx context.Context, formID string) (*domain.FormDetail, error)
	// UpdateForm patches title and/or description; nil means unchanged.
	UpdateForm(ctx context.Context, formID string, title, description *string) (*domain.FormDetail, error)
	DeleteForm(ctx context.Context, formID string) error

	AddQuestion(ctx context.Context, formID string, q domain.QuestionSpec) error
	UpdateItem(ctx context.Context, formID, itemID string, patch domain.ItemPatch) error
	DeleteItem(ctx context.Context, formID, itemID string) error
	MoveItem(ctx context.Context, formID, itemID string, newIndex int) error
	// AddSection inserts a page break. A negative position appends.
	AddSection(ctx context.Context, formID, title, description string, position int) error

	ListResponses(ctx context.Context, formID string, pageSize int64, pageToken string) (*domain.ResponseList, error)
	GetResponse(ctx context.Context, formID, responseID string) (*domain.ResponseSummary, error)
	ExportResponsesCSV(ctx context.Context, formID string, includeTimestamps, includeEmail bool) (*domain.ExportResult, error)

	// Duplicate copies a form: one create call plus batched item
	// creation. Not atomic.
	Duplicate(ctx context.Context, formID, newTitle string) (*domain.DuplicateResult, error)
	// Personalize replaces placeholder strings in the form info and all
	// item titles/descriptions. Issues one get plus one patch per
	// changed target; a failure mid-way leaves earlier patches applied.
	Personalize(ctx context.Context, formID string, replacements map[string]string) (*domain.PersonalizeResult, error)
}

// SheetsGateway is the outbound port to the Google Sheets API.
type SheetsGateway interface {
	GetSpreadsheet(ctx context.Context, spreadsheetID string) (*domain.SpreadsheetInfo, error)
	ListSheets(ctx context.Context, spreadsheetID string) ([]domain.SheetMetadata, error)
	// ReadValues reads a range; empty rangeNotation and sheetName read
	// the whole used grid.
	ReadValues(ctx context.Context, spreadsheetID, rangeNotation, sheetName string) (*domain.SheetData, error)
}
