package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/greenops"
)

// tabwriterPadding is the column gap used by every table.
const tabwriterPadding = 2

//nolint:gochecknoglobals // shared lipgloss styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

// isWriterTerminal reports whether w is a terminal.
func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// outputFormat resolves --output against the configured default and checks it.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if strings.TrimSpace(format) == "" {
		format = config.GetDefaultOutputFormat()
	}
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatNDJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json, or ndjson)", format)
	}
}

// precision returns the configured number of decimals for emissions values.
func precision() int {
	return config.GetOutputPrecision()
}

// formatEmissions formats a tCO2e value with the configured precision.
func formatEmissions(v float64) string {
	return greenops.FormatFloat(v, precision())
}

func formatPercent(v float64) string {
	return greenops.FormatFloat(v, 1) + "%"
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeNDJSON writes each row as one JSON object per line.
func writeNDJSON[T any](w io.Writer, rows []T) error {
	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("marshaling row: %w", err)
		}
		if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

// table accumulates tab-separated rows under an upper-case header.
type table struct {
	tw *tabwriter.Writer
}

func newTable(w io.Writer, headers ...string) *table {
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)}
	upper := make([]string, len(headers))
	dashes := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(t.tw, strings.Join(upper, "\t"))
	fmt.Fprintln(t.tw, strings.Join(dashes, "\t"))
	return t
}

func (t *table) row(cells ...string) {
	fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

func (t *table) flush() error {
	return t.tw.Flush()
}

// heading prints a section title, styled when w is a terminal.
func heading(w io.Writer, text string) {
	if isWriterTerminal(w) {
		fmt.Fprintln(w, titleStyle.Render(text))
		return
	}
	fmt.Fprintln(w, text)
}

// note prints a secondary line, dimmed when w is a terminal.
func note(w io.Writer, text string) {
	if isWriterTerminal(w) {
		fmt.Fprintln(w, noteStyle.Render(text))
		return
	}
	fmt.Fprintln(w, text)
}
