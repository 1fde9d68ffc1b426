// Package report renders validation reports for humans and for tooling.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Format selects the report encoding.
type Format string

const (
	// FormatText renders a colored summary when the output is a terminal.
	FormatText Format = "text"
	// FormatJSON renders the report as indented JSON.
	FormatJSON Format = "json"
)

// Writer writes reports to an output stream.
type Writer struct {
	out    io.Writer
	styles styles
}

// NewWriter creates a new Writer. Colors are disabled when out is not a
// terminal or NO_COLOR is set.
func NewWriter(out io.Writer) *Writer {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(colorProfile(out))
	return &Writer{
		out:    out,
		styles: newStyles(r),
	}
}

// colorProfile returns the color profile based on environment.
func colorProfile(out io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.ANSI256
}

// Write renders report in the given format.
func (w *Writer) Write(report *domain.Report, format Format) error {
	switch format {
	case FormatJSON:
		return w.writeJSON(report)
	case FormatText, "":
		return w.writeText(report)
	default:
		return zerr.With(domain.ErrUnknownReportFormat, "format", string(format))
	}
}

func (w *Writer) writeJSON(report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report")
	}
	data = append(data, '\n')
	if _, err := w.out.Write(data); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}

func (w *Writer) writeText(report *domain.Report) error {
	var s strings.Builder

	s.WriteString(w.styles.title.Render("PREBUILT CACHE"))
	fmt.Fprintf(&s, " %s (%s)\n\n", report.RunID, report.Mode)

	s.WriteString(w.styles.header.Render(fmt.Sprintf("Hit (%d)", len(report.Hit))) + "\n")
	for _, id := range report.Hit {
		s.WriteString("  " + w.styles.hit.Render("✓ "+id) + "\n")
	}

	width := 0
	for _, entry := range report.Missed {
		width = max(width, len(entry.Module))
	}

	s.WriteString("\n" + w.styles.header.Render(fmt.Sprintf("Missed (%d)", len(report.Missed))) + "\n")
	for _, entry := range report.Missed {
		pad := strings.Repeat(" ", width-len(entry.Module)+2)
		s.WriteString("  " + w.styles.missed.Render("✗ "+entry.Module) + pad + w.styles.reason.Render(entry.Reason) + "\n")
	}

	if _, err := io.WriteString(w.out, s.String()); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}
