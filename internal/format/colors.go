package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes ANSI escape codes to get actual visible length
func StripANSI(str string) string {
	return ansiRegex.ReplaceAllString(str, "")
}

// PadRight pads a colored string to ensure it displays at the specified width
func PadRight(str string, width int) string {
	visibleLen := len(StripANSI(str))
	if visibleLen < width {
		return str + strings.Repeat(" ", width-visibleLen)
	}
	return str
}

// ColorStatus colors an HTTP status code: green for 2xx, red otherwise.
func ColorStatus(code int) string {
	str := fmt.Sprintf("%d", code)
	if code >= 200 && code < 300 {
		return Green(str)
	}
	return Red(str)
}

// ColorCount dims an empty count so "0 peers" does not look like a value.
func ColorCount(n int) string {
	if n == 0 {
		return Yellow("0")
	}
	return Bold(fmt.Sprintf("%d", n))
}
