package display

import (
	"fmt"
	"io"

	"github.com/dmagro/zechub-cli/internal/format"
)

// ProbeFormatter prints the startup connection check. A zero StatusCode
// means the request never got a response.
type ProbeFormatter struct {
	Address    string
	StatusCode int
}

func (f *ProbeFormatter) Format(w io.Writer) error {
	fmt.Fprintf(w, "Attempting to connect to Zebrad @ %s\n", format.Bold(f.Address))
	if f.StatusCode == 0 {
		_, err := fmt.Fprintf(w, "%s\n\n", format.Red("Could not connect!"))
		return err
	}
	if f.StatusCode == 200 {
		_, err := fmt.Fprintf(w, "%s\n\n", format.Green("Connected!"))
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s\n\n", format.Red("No response!"), format.Dim(fmt.Sprintf("(HTTP %d)", f.StatusCode)))
	return err
}

// SummaryFormatter prints the per-call RPC summary.
type SummaryFormatter struct {
	Method     string
	StatusCode int
	Bytes      int
	RPCError   error
}

func (f *SummaryFormatter) Format(w io.Writer) error {
	fmt.Fprintf(w, "\n%s %s\n", format.PadRight(format.Bold("Zebrad RPC"), 15)+":", f.Method)
	fmt.Fprintf(w, "%s %s\n", format.PadRight(format.Bold("Response"), 15)+":", format.ColorStatus(f.StatusCode))
	fmt.Fprintf(w, "%s %s\n", format.PadRight(format.Bold("Received bytes"), 15)+":", format.FormatNumber(uint64(f.Bytes)))
	if f.RPCError != nil {
		fmt.Fprintf(w, "%s %s\n", format.PadRight(format.Bold("Node error"), 15)+":", format.Red(f.RPCError.Error()))
	}
	_, err := fmt.Fprintln(w)
	return err
}

// TextFormatter prints projected JSON text, optionally followed by a count
// line such as "8 peers".
type TextFormatter struct {
	Title string
	Text  string
	Count int
	Noun  string // count line is omitted when empty
}

func (f *TextFormatter) Format(w io.Writer) error {
	if f.Title != "" {
		fmt.Fprintf(w, "%s\n", format.Bold(f.Title))
	}
	if f.Text != "" {
		fmt.Fprintln(w, f.Text)
	}
	if f.Noun != "" {
		fmt.Fprintf(w, "\n%s %s\n", format.ColorCount(f.Count), f.Noun)
	}
	_, err := fmt.Fprintln(w)
	return err
}
