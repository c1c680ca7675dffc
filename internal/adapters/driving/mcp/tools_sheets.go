package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetSpreadsheetInput is the input schema for the get_spreadsheet tool.
type GetSpreadsheetInput struct {
	Spreadsheet string `json:"spreadsheet" jsonschema:"spreadsheet ID or full docs.google.com URL"`
}

// GetSpreadsheetOutput is the output schema for the get_spreadsheet tool.
type GetSpreadsheetOutput struct {
	SpreadsheetID string        `json:"spreadsheet_id"`
	Title         string        `json:"title"`
	Locale        string        `json:"locale,omitempty"`
	TimeZone      string        `json:"time_zone,omitempty"`
	Sheets        []SheetOutput `json:"sheets"`
}

// SheetOutput describes one sheet of a spreadsheet.
type SheetOutput struct {
	SheetID     int64  `json:"sheet_id"`
	Title       string `json:"title"`
	RowCount    int64  `json:"row_count"`
	ColumnCount int64  `json:"column_count"`
}

func (s *Server) handleGetSpreadsheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetSpreadsheetInput,
) (*mcp.CallToolResult, GetSpreadsheetOutput, error) {
	if s.ports.Sheets == nil {
		return nil, GetSpreadsheetOutput{}, ErrMissingSheetsGateway
	}
	if err := requireID("spreadsheet", input.Spreadsheet); err != nil {
		return nil, GetSpreadsheetOutput{}, err
	}

	info, err := s.ports.Sheets.GetSpreadsheet(ctx, input.Spreadsheet)
	if err != nil {
		return nil, GetSpreadsheetOutput{}, err
	}

	output := GetSpreadsheetOutput{
		SpreadsheetID: info.SpreadsheetID,
		Title:         info.Title,
		Locale:        info.Locale,
		TimeZone:      info.TimeZone,
		Sheets:        make([]SheetOutput, len(info.Sheets)),
	}
	for i, sh := range info.Sheets {
		output.Sheets[i] = SheetOutput{
			SheetID:     sh.SheetID,
			Title:       sh.Title,
			RowCount:    sh.RowCount,
			ColumnCount: sh.ColumnCount,
		}
	}
	return nil, output, nil
}

// ReadSheetInput is the input schema for the read_sheet tool.
type ReadSheetInput struct {
	Spreadsheet string `json:"spreadsheet" jsonschema:"spreadsheet ID or full docs.google.com URL"`
	Sheet       string `json:"sheet,omitempty" jsonschema:"sheet name; omit for the first sheet"`
	Range       string `json:"range,omitempty" jsonschema:"A1 range like A1:C10; omit for the whole sheet"`
}

// ReadSheetOutput is the output schema for the read_sheet tool.
type ReadSheetOutput struct {
	Range       string     `json:"range"`
	Values      [][]string `json:"values"`
	RowCount    int        `json:"row_count"`
	ColumnCount int        `json:"column_count"`
}

func (s *Server) handleReadSheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadSheetInput,
) (*mcp.CallToolResult, ReadSheetOutput, error) {
	if s.ports.Sheets == nil {
		return nil, ReadSheetOutput{}, ErrMissingSheetsGateway
	}
	if err := requireID("spreadsheet", input.Spreadsheet); err != nil {
		return nil, ReadSheetOutput{}, err
	}

	data, err := s.ports.Sheets.ReadValues(ctx, input.Spreadsheet, input.Range, input.Sheet)
	if err != nil {
		return nil, ReadSheetOutput{}, err
	}
	return nil, ReadSheetOutput{
		Range:       data.Range,
		Values:      data.Values,
		RowCount:    data.RowCount,
		ColumnCount: data.ColumnCount,
	}, nil
}
