package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/greenops"
)

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// ErrUnknownFormat is returned by Render.
var ErrUnknownFormat = errors.New("unknown report format")

const (
	colorTitle   = lipgloss.Color("39")
	colorHeading = lipgloss.Color("86")
	colorLabel   = lipgloss.Color("245")
)

// Render writes r to w in format. styled enables terminal colours for text.
func Render(w io.Writer, r Report, format string, styled bool) error {
	switch strings.ToLower(format) {
	case "", FormatText, "table":
		return WriteText(w, r, styled)
	case FormatMarkdown, "md":
		return WriteMarkdown(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

type textStyles struct {
	title, heading, label lipgloss.Style
}

func newTextStyles(styled bool) textStyles {
	if !styled {
		plain := lipgloss.NewStyle()
		return textStyles{title: plain, heading: plain, label: plain}
	}
	return textStyles{
		title:   lipgloss.NewStyle().Foreground(colorTitle).Bold(true),
		heading: lipgloss.NewStyle().Foreground(colorHeading).Bold(true).Underline(true),
		label:   lipgloss.NewStyle().Foreground(colorLabel),
	}
}

// WriteText writes a plain or styled console report.
func WriteText(w io.Writer, r Report, styled bool) error {
	st := newTextStyles(styled)
	var b strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", st.label.Render(fmt.Sprintf("%-26s", label+":")), value)
	}
	heading := func(s string) {
		fmt.Fprintf(&b, "\n%s\n", st.heading.Render(strings.ToUpper(s)))
	}

	fmt.Fprintf(&b, "%s\n", st.title.Render("GHG EMISSIONS REPORT: "+r.Organization.Name))
	fmt.Fprintf(&b, "Report ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	heading("Company Information")
	for _, kv := range companyRows(r) {
		row(kv[0], kv[1])
	}

	heading("Emissions Summary")
	for _, kv := range summaryRows(r) {
		row(kv[0], kv[1])
	}

	if r.Target != nil {
		heading("Reduction Targets")
		for _, kv := range targetRows(r) {
			row(kv[0], kv[1])
		}
	}

	for _, s := range factors.Scopes() {
		bd := r.Breakdown(s)
		if len(bd) == 0 {
			continue
		}
		heading(s.String() + " Breakdown")
		for _, l := range bd {
			row(l.Label, greenops.FormatTonnes(l.Emissions))
		}
	}

	if !r.Equivalencies.IsEmpty {
		heading("Equivalencies")
		for _, e := range r.Equivalencies.Equivalents {
			row(e.Label, e.FormattedValue)
		}
	}

	heading("Recommendations")
	for i, s := range r.Recommendations {
		fmt.Fprintf(&b, "  %d. %s (%s, %s potential, %s)\n", i+1, s.Name, s.ScopeName, s.Potential, s.Timeframe)
	}
	if len(r.IndustryActions) > 0 {
		heading("Industry Actions")
		for _, a := range r.IndustryActions {
			fmt.Fprintf(&b, "  - %s\n", a)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMarkdown writes a GitHub-flavoured Markdown report.
func WriteMarkdown(w io.Writer, r Report) error {
	var b strings.Builder

	table := func(rows [][2]string) {
		b.WriteString("| Item | Value |\n|---|---|\n")
		for _, kv := range rows {
			fmt.Fprintf(&b, "| %s | %s |\n", kv[0], kv[1])
		}
	}

	fmt.Fprintf(&b, "# GHG Emissions Report: %s\n\n", r.Organization.Name)
	fmt.Fprintf(&b, "Reporting year %d. Report `%s`, generated %s.\n", r.Organization.Year, r.ID,
		r.GeneratedAt.Format("2006-01-02"))

	b.WriteString("\n## Company Information\n\n")
	table(companyRows(r))

	b.WriteString("\n## Emissions Summary\n\n")
	table(summaryRows(r))

	if r.Target != nil {
		b.WriteString("\n## Reduction Targets\n\n")
		table(targetRows(r))
	}

	for _, s := range factors.Scopes() {
		bd := r.Breakdown(s)
		if len(bd) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s Breakdown\n\n| Category | Emissions (tCO2e) |\n|---|---:|\n", s)
		for _, l := range bd {
			fmt.Fprintf(&b, "| %s | %s |\n", l.Label, greenops.FormatFloat(l.Emissions, 2))
		}
	}

	if !r.Equivalencies.IsEmpty {
		fmt.Fprintf(&b, "\n## Equivalencies\n\n%s.\n", r.Equivalencies.DisplayText)
	}

	b.WriteString("\n## Recommendations\n\n")
	for i, s := range r.Recommendations {
		fmt.Fprintf(&b, "%d. **%s** (%s, %s potential, %s)\n", i+1, s.Name, s.ScopeName, s.Potential, s.Timeframe)
	}
	if len(r.IndustryActions) > 0 {
		b.WriteString("\n### Industry Actions\n\n")
		for _, a := range r.IndustryActions {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func companyRows(r Report) [][2]string {
	o := r.Organization
	return [][2]string{
		{"Name", o.Name},
		{"Industry", o.Industry},
		{"Employees", greenops.FormatNumber(int64(o.Employees))},
		{"Revenue", fmt.Sprintf("$%s million", greenops.FormatFloat(o.Revenue, 1))},
		{"Reporting Year", fmt.Sprintf("%d", o.Year)},
	}
}

func summaryRows(r Report) [][2]string {
	rows := [][2]string{{"Total Emissions", greenops.FormatTonnes(r.Total)}}
	for _, s := range r.Scopes {
		rows = append(rows, [2]string{
			s.Scope + " Emissions",
			fmt.Sprintf("%s (%.1f%%)", greenops.FormatTonnes(s.Emissions), s.Share),
		})
	}
	return append(rows,
		[2]string{"Emissions per Employee", greenops.FormatTonnes(r.PerEmployee)},
		[2]string{"Emissions Intensity", greenops.FormatFloat(r.Intensity, 2) + " tCO2e per million USD"},
		[2]string{"Industry Performance", r.PerformanceClass},
	)
}

func targetRows(r Report) [][2]string {
	t := r.Target
	return [][2]string{
		{fmt.Sprintf("%d Target", t.TargetYear), greenops.FormatTonnes(t.TargetEmissions)},
		{"Reduction from Base", fmt.Sprintf("%.1f%% from %d", t.ReductionPercentage, t.BaseYear)},
		{"Required Annual Reduction", fmt.Sprintf("%s (%.2f%%/yr)",
			greenops.FormatTonnes(t.AnnualReductionAbsolute), t.AnnualReductionPercentage)},
	}
}
