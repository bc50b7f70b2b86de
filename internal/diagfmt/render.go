// Package diagfmt renders diag.Diagnostic values as human-readable,
// framed source excerpts ("Frame & Focus": a bordered box around the
// offending line with a caret underline beneath the exact span).
package diagfmt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/LetsZero/zero-compiler/internal/diag"
	"github.com/LetsZero/zero-compiler/internal/source"
)

// Options configures how diagnostics are rendered.
type Options struct {
	// Color enables ANSI coloring of severities and carets. Callers
	// decide this once, typically via golang.org/x/term.IsTerminal.
	Color bool
}

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1)

// Render renders one diagnostic as a severity-prefixed message followed
// by a framed excerpt of its primary span's source line, with a caret
// underline beneath the exact byte range.
func Render(m *source.Manager, d diag.Diagnostic, opts Options) string {
	var sb strings.Builder

	sb.WriteString(renderHeader(d, opts))
	sb.WriteString("\n")

	if d.Primary.Valid() {
		sb.WriteString(renderFrame(m, d.Primary, opts))
	}

	for _, n := range d.Notes {
		sb.WriteString(colorize(opts, color.FgCyan, "note: ") + n.Msg + "\n")
	}

	return sb.String()
}

func renderHeader(d diag.Diagnostic, opts Options) string {
	prefix := severityPrefix(d.Severity, opts)
	loc := ""
	if d.Primary.Valid() {
		loc = fmt.Sprintf(" [%s]", d.Code)
	}
	return fmt.Sprintf("%s%s%s", prefix, d.Message, loc)
}

func severityPrefix(sev diag.Severity, opts Options) string {
	switch sev {
	case diag.SevError:
		return colorize(opts, color.FgRed, "error: ")
	case diag.SevWarning:
		return colorize(opts, color.FgYellow, "warning: ")
	default:
		return colorize(opts, color.FgBlue, "info: ")
	}
}

func colorize(opts Options, attr color.Attribute, s string) string {
	if !opts.Color {
		return s
	}
	return color.New(attr, color.Bold).Sprint(s)
}

// renderFrame builds the bordered excerpt: a "path:line:col" locator
// line, the source line itself, and a caret underline sized to the
// span's display width (accounting for multi-byte runes via
// go-runewidth, not byte length).
func renderFrame(m *source.Manager, span source.Span, opts Options) string {
	file := m.Get(span.File)
	if file == nil {
		return ""
	}
	lc := m.OffsetToLineCol(span.File, span.Start)
	if lc.Line == 0 {
		return ""
	}
	lineText := m.GetLine(span.File, lc.Line)

	locator := fmt.Sprintf("%s:%d:%d", file.Path, lc.Line, lc.Col)
	caretLine := buildCaretLine(lineText, int(lc.Col)-1, span.Len())
	if opts.Color {
		caretLine = color.New(color.FgRed, color.Bold).Sprint(caretLine)
	}

	body := locator + "\n" + lineText + "\n" + caretLine
	return frameStyle.Render(body) + "\n"
}

// buildCaretLine places '^' beneath the span that starts at byte offset
// startCol (0-indexed) of line and covers spanLen bytes, clipped to the
// line. The padding and the caret run are both sized by display width
// (go-runewidth), so the caret lines up under variable-width UTF-8
// source text.
func buildCaretLine(line string, startCol int, spanLen uint32) string {
	if startCol > len(line) {
		startCol = len(line)
	}
	end := startCol + int(spanLen)
	if end > len(line) {
		end = len(line)
	}
	var pad strings.Builder
	for _, r := range line[:startCol] {
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			w = 1
		}
		pad.WriteString(strings.Repeat(" ", w))
	}

	width := runewidth.StringWidth(line[startCol:end])
	if width < 1 {
		width = 1
	}
	return pad.String() + strings.Repeat("^", width)
}
