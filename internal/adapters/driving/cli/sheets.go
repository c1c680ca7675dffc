package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Read Google Sheets",
	Long: `Inspect and read Google Sheets. Spreadsheets are addressed by ID
or by pasting the full URL.

Examples:
  gtools sheets info <spreadsheet-id-or-url>
  gtools sheets list <spreadsheet-id-or-url>
  gtools sheets read <spreadsheet-id-or-url> --sheet "Results" --range A1:C10`,
}

var sheetsInfoCmd = &cobra.Command{
	Use:   "info [spreadsheet]",
	Short: "Show spreadsheet metadata",
	Args:  exactIDs(1),
	RunE:  runSheetsInfo,
}

var sheetsListCmd = &cobra.Command{
	Use:   "list [spreadsheet]",
	Short: "List the sheets of a spreadsheet",
	Args:  exactIDs(1),
	RunE:  runSheetsList,
}

var sheetsReadCmd = &cobra.Command{
	Use:   "read [spreadsheet]",
	Short: "Read cell values",
	Args:  exactIDs(1),
	RunE:  runSheetsRead,
}

var (
	sheetsReadRange string
	sheetsReadSheet string
)

func init() {
	sheetsReadCmd.Flags().StringVarP(&sheetsReadRange, "range", "r", "", "A1 range (default whole sheet)")
	sheetsReadCmd.Flags().StringVarP(&sheetsReadSheet, "sheet", "s", "", "sheet name (default first sheet)")

	sheetsCmd.AddCommand(sheetsInfoCmd)
	sheetsCmd.AddCommand(sheetsListCmd)
	sheetsCmd.AddCommand(sheetsReadCmd)
	rootCmd.AddCommand(sheetsCmd)
}

func runSheetsInfo(cmd *cobra.Command, args []string) error {
	if sheetsGateway == nil {
		return errNotConfigured
	}

	info, err := sheetsGateway.GetSpreadsheet(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("%s (%s)\n", info.Title, info.SpreadsheetID)
	if info.Locale != "" {
		cmd.Printf("Locale:    %s\n", info.Locale)
	}
	if info.TimeZone != "" {
		cmd.Printf("Time zone: %s\n", info.TimeZone)
	}
	cmd.Printf("Sheets:    %d\n", len(info.Sheets))
	return nil
}

func runSheetsList(cmd *cobra.Command, args []string) error {
	if sheetsGateway == nil {
		return errNotConfigured
	}

	sheets, err := sheetsGateway.ListSheets(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(sheets))
	for _, s := range sheets {
		rows = append(rows, []string{
			strconv.FormatInt(s.SheetID, 10),
			s.Title,
			strconv.FormatInt(s.RowCount, 10),
			strconv.FormatInt(s.ColumnCount, 10),
		})
	}
	return emit(cmd, sheets, []string{"Sheet ID", "Title", "Rows", "Columns"}, rows)
}

func runSheetsRead(cmd *cobra.Command, args []string) error {
	if sheetsGateway == nil {
		return errNotConfigured
	}

	data, err := sheetsGateway.ReadValues(cmd.Context(), args[0], sheetsReadRange, sheetsReadSheet)
	if err != nil {
		return err
	}

	if data.RowCount == 0 {
		cmd.Println("No data in range.")
		return nil
	}

	// First row serves as the table header.
	headers := data.Values[0]
	return emit(cmd, data, headers, data.Values[1:])
}
