package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderTable renders headers and rows as a bordered table.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

// outputWriter resolves the destination: the --output file when set,
// the command's stdout otherwise. The caller must close the returned
// closer.
func outputWriter(cmd *cobra.Command) (io.Writer, func() error, error) {
	if flagOutput == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(flagOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}

// emit writes structured output in the selected format. The jsonValue
// is marshalled for json format; headers and rows feed table and csv.
func emit(cmd *cobra.Command, jsonValue any, headers []string, rows [][]string) error {
	w, closeFn, err := outputWriter(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	switch strings.ToLower(flagFormat) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonValue)
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write(headers); err != nil {
			return err
		}
		if err := cw.WriteAll(rows); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	default:
		_, err := fmt.Fprintln(w, renderTable(headers, rows))
		return err
	}
}

// emitRaw writes preformatted text, honoring --output.
func emitRaw(cmd *cobra.Command, content string) error {
	w, closeFn, err := outputWriter(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	_, err = io.WriteString(w, content)
	return err
}
