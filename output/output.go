// Package output provides console reporting for the copy pipeline.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	successFormat = "✓ %s"
	errorFormat   = "✗ %s"
	warnFormat    = "⚠ %s"
)

// Reporter writes formatted status lines for the sequential pipeline steps.
// Styling is applied only when the underlying writer is a terminal.
type Reporter struct {
	w      io.Writer
	styles styles
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{
		w:      w,
		styles: newStyles(isTerminal(w)),
	}
}

// Section prints a banner separating the major pipeline phases.
func (r *Reporter) Section(lines ...string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.separator.Render(separatorLine))

	for _, line := range lines {
		fmt.Fprintln(r.w, r.styles.section.Render(line))
	}

	fmt.Fprintln(r.w, r.styles.separator.Render(separatorLine))
}

// Infof prints an unadorned status line.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintln(r.w, fmt.Sprintf(format, args...))
}

// Successf prints a success marker followed by the formatted message.
func (r *Reporter) Successf(format string, args ...any) {
	fmt.Fprintln(r.w, r.styles.success.Render(fmt.Sprintf(successFormat, fmt.Sprintf(format, args...))))
}

// Failf prints a failure marker followed by the formatted message.
func (r *Reporter) Failf(format string, args ...any) {
	fmt.Fprintln(r.w, r.styles.failure.Render(fmt.Sprintf(errorFormat, fmt.Sprintf(format, args...))))
}

// Warnf prints a warning marker followed by the formatted message.
func (r *Reporter) Warnf(format string, args ...any) {
	fmt.Fprintln(r.w, r.styles.warning.Render(fmt.Sprintf(warnFormat, fmt.Sprintf(format, args...))))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
