package domain

// SheetMetadata describes one sheet within a spreadsheet.
type SheetMetadata struct {
	SheetID     int64  `json:"sheetId"`
	Title       string `json:"title"`
	Index       int64  `json:"index"`
	RowCount    int64  `json:"rowCount"`
	ColumnCount int64  `json:"columnCount"`
}

// SpreadsheetInfo is spreadsheet-level metadata including all sheets.
type SpreadsheetInfo struct {
	SpreadsheetID string          `json:"spreadsheetId"`
	Title         string          `json:"title"`
	Locale        string          `json:"locale,omitempty"`
	TimeZone      string          `json:"timeZone,omitempty"`
	Sheets        []SheetMetadata `json:"sheets"`
}

// SheetData is a rectangular block of values read from a range. Rows
// are normalized to equal length; missing cells are empty strings.
type SheetData struct {
	Range       string     `json:"range"`
	Values      [][]string `json:"values"`
	RowCount    int        `json:"rowCount"`
	ColumnCount int        `json:"columnCount"`
}
