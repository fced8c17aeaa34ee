// Package display contains terminal formatting logic for the console.
//
// Operations keep RPC, projection and extraction separate from rendering by
// delegating all human-readable output to formatters in this package.
package display

import (
	"fmt"
	"io"

	"github.com/dmagro/zechub-cli/internal/format"
)

const ClearScreen = "\033[2J\033[H"

// Formatter writes formatted output to a writer.
type Formatter interface {
	Format(w io.Writer) error
}

// Clear writes ANSI clear screen sequence to w.
func Clear(w io.Writer) {
	_, _ = io.WriteString(w, ClearScreen)
}

// Render runs f against w.
func Render(w io.Writer, f Formatter) error {
	return f.Format(w)
}

// ErrorFormatter prints a failed operation in red.
type ErrorFormatter struct {
	Operation string
	Err       error
}

func (f *ErrorFormatter) Format(w io.Writer) error {
	if f.Operation != "" {
		_, err := fmt.Fprintf(w, "\n%s %s: %v\n\n", format.Red("✗"), format.Red(f.Operation+" failed"), f.Err)
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s %v\n\n", format.Red("✗"), f.Err)
	return err
}

// ReportFormatter tells the operator where a report was written.
type ReportFormatter struct {
	Path string
}

func (f *ReportFormatter) Format(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s\n", format.Dim("Report written to"), f.Path)
	return err
}
