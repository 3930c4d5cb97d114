// Package console prints human-readable progress lines.
//
// Progress goes to the output stream and errors to the error stream. Styling
// is rendered per writer, so redirected output stays plain text.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/quantmind-br/reportmanifest/internal/domain"
)

var (
	primaryColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	successColor = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#FE5F86", Dark: "#FE5F86"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	warnColor    = lipgloss.AdaptiveColor{Light: "#FF9500", Dark: "#FFAA33"}
)

// Printer writes styled progress and error lines
type Printer struct {
	out io.Writer
	err io.Writer

	title   lipgloss.Style
	muted   lipgloss.Style
	item    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter creates a printer. Nil writers default to stdout and stderr.
func NewPrinter(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)

	return &Printer{
		out:     out,
		err:     errOut,
		title:   outR.NewStyle().Bold(true).Foreground(primaryColor),
		muted:   outR.NewStyle().Foreground(mutedColor),
		item:    outR.NewStyle().Foreground(lipgloss.Color("252")),
		success: outR.NewStyle().Foreground(successColor),
		warn:    outR.NewStyle().Foreground(warnColor),
		failure: errR.NewStyle().Bold(true).Foreground(errorColor),
	}
}

// Start announces the scan of the reports directory
func (p *Printer) Start(label string) {
	p.println(p.title.Render(fmt.Sprintf("Scanning %s/ directory...", label)))
}

// Notice prints an informational line
func (p *Printer) Notice(msg string) {
	p.println(p.warn.Render(msg))
}

// Entries lists discovered reports, one per line. Nested entries are shown
// by path, flat entries by name.
func (p *Printer) Entries(mode domain.ScanMode, entries []domain.ManifestEntry) {
	if len(entries) == 0 {
		return
	}

	p.println(p.muted.Render("  Reports found:"))
	for _, e := range entries {
		shown := e.Name
		if mode == domain.ScanModeNested {
			shown = e.Path
		}
		p.println(p.item.Render("    - " + shown))
	}
}

// Done prints the completion line with the report count
func (p *Printer) Done(file string, count int, dryRun bool) {
	if dryRun {
		p.println(p.success.Render(fmt.Sprintf("✓ Dry run: %s would list %d report(s)", file, count)))
		return
	}
	p.println(p.success.Render(fmt.Sprintf("✓ Generated %s with %d report(s)", file, count)))
}

// Verified prints the result of a successful manifest check
func (p *Printer) Verified(file string, count int) {
	p.println(p.success.Render(fmt.Sprintf("✓ %s is valid (%d report(s))", file, count)))
}

// Error prints "Error <action>: <err>" to the error stream, or "Error: <err>"
// when action is empty
func (p *Printer) Error(action string, err error) {
	msg := fmt.Sprintf("Error: %v", err)
	if action != "" {
		msg = fmt.Sprintf("Error %s: %v", action, err)
	}
	fmt.Fprintln(p.err, p.failure.Render(msg))
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.out, s)
}
