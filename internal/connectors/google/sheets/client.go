// Package sheets implements the read-only Sheets gateway. Spreadsheet
// references accept either a bare ID or a full Sheets URL.
package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/gtools-cli/internal/connectors/google"
	"github.com/custodia-labs/gtools-cli/internal/core/domain"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.SheetsGateway = (*Client)(nil)

// spreadsheetURLPattern extracts the ID from a Sheets URL.
var spreadsheetURLPattern = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// ExtractSpreadsheetID resolves a spreadsheet reference to its ID.
// Full URLs have the ID between /d/ and the next slash; anything that
// is not a URL passes through as-is.
func ExtractSpreadsheetID(ref string) string {
	if !strings.Contains(ref, "docs.google.com") {
		return ref
	}
	if m := spreadsheetURLPattern.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	return ref
}

// BuildRange assembles an A1 range from a sheet name and cell range.
// Sheet names containing quotes are escaped by doubling, per A1
// notation rules.
func BuildRange(sheetName, cellRange string) string {
	if sheetName == "" {
		return cellRange
	}
	escaped := "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
	if cellRange == "" {
		return escaped
	}
	return escaped + "!" + cellRange
}

// Client is the Sheets gateway.
type Client struct {
	sheets *sheets.Service
}

// NewClient creates a sheets gateway over the given API service.
func NewClient(sheetsSvc *sheets.Service) *Client {
	return &Client{sheets: sheetsSvc}
}

// GetSpreadsheet fetches spreadsheet metadata including all sheets.
func (c *Client) GetSpreadsheet(ctx context.Context, spreadsheetID string) (*domain.SpreadsheetInfo, error) {
	spreadsheetID = ExtractSpreadsheetID(spreadsheetID)

	ss, err := c.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("spreadsheetId,properties(title,locale,timeZone),sheets(properties(sheetId,title,index,gridProperties))").
		Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	info := &domain.SpreadsheetInfo{SpreadsheetID: ss.SpreadsheetId}
	if ss.Properties != nil {
		info.Title = ss.Properties.Title
		info.Locale = ss.Properties.Locale
		info.TimeZone = ss.Properties.TimeZone
	}
	for _, sheet := range ss.Sheets {
		info.Sheets = append(info.Sheets, toSheetMetadata(sheet))
	}
	return info, nil
}

// ListSheets lists the sheets of a spreadsheet.
func (c *Client) ListSheets(ctx context.Context, spreadsheetID string) ([]domain.SheetMetadata, error) {
	info, err := c.GetSpreadsheet(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return info.Sheets, nil
}

func toSheetMetadata(sheet *sheets.Sheet) domain.SheetMetadata {
	var md domain.SheetMetadata
	if sheet.Properties != nil {
		md.SheetID = sheet.Properties.SheetId
		md.Title = sheet.Properties.Title
		md.Index = sheet.Properties.Index
		if sheet.Properties.GridProperties != nil {
			md.RowCount = sheet.Properties.GridProperties.RowCount
			md.ColumnCount = sheet.Properties.GridProperties.ColumnCount
		}
	}
	return md
}

// ReadValues reads a range of cell values. Empty range and sheet name
// read the first sheet's used grid. Values come back formatted as the
// sheet displays them.
func (c *Client) ReadValues(ctx context.Context, spreadsheetID, rangeNotation, sheetName string) (*domain.SheetData, error) {
	spreadsheetID = ExtractSpreadsheetID(spreadsheetID)

	readRange := BuildRange(sheetName, rangeNotation)
	if readRange == "" {
		// The Values API requires a range; resolve the first sheet.
		info, err := c.GetSpreadsheet(ctx, spreadsheetID)
		if err != nil {
			return nil, err
		}
		if len(info.Sheets) == 0 {
			return nil, &domain.GatewayError{
				Kind:   domain.GatewayInvalidRequest,
				Detail: fmt.Sprintf("spreadsheet %s has no sheets", spreadsheetID),
			}
		}
		readRange = BuildRange(info.Sheets[0].Title, "")
	}

	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, readRange).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	values, width := normalize(resp.Values)
	return &domain.SheetData{
		Range:       resp.Range,
		Values:      values,
		RowCount:    len(values),
		ColumnCount: width,
	}, nil
}

// normalize converts the API's jagged any-typed rows into a
// rectangular string grid.
func normalize(rows [][]any) ([][]string, int) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, width)
		for j, cell := range row {
			cells[j] = fmt.Sprintf("%v", cell)
		}
		out[i] = cells
	}
	return out, width
}
