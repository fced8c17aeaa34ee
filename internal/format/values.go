package format

import (
	"fmt"
	"time"
)

// FormatTimestamp converts a Unix timestamp to a human-readable string with relative time.
//
// Examples:
//   - 1477641360 -> "2016-10-28 07:56:00 UTC (3640d ago)"
func FormatTimestamp(ts int64) string {
	return FormatTimestampAt(ts, time.Now())
}

// FormatTimestampAt is FormatTimestamp with an explicit reference time.
func FormatTimestampAt(ts int64, now time.Time) string {
	t := time.Unix(ts, 0)
	ago := now.Sub(t)

	var agoStr string
	switch {
	case ago < 0:
		agoStr = "in the future"
	case ago < time.Minute:
		agoStr = fmt.Sprintf("%ds ago", int(ago.Seconds()))
	case ago < time.Hour:
		agoStr = fmt.Sprintf("%dm ago", int(ago.Minutes()))
	case ago < 24*time.Hour:
		agoStr = fmt.Sprintf("%dh ago", int(ago.Hours()))
	default:
		agoStr = fmt.Sprintf("%dd ago", int(ago.Hours()/24))
	}

	return fmt.Sprintf("%s (%s)", t.UTC().Format("2006-01-02 15:04:05 UTC"), agoStr)
}

// FormatNumber adds thousand separators (commas) to a number for readability.
//
// Examples:
//   - 2726400 -> "2,726,400"
//   - 123 -> "123"
func FormatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatZEC renders a pool value with the eight decimal places of a zatoshi.
func FormatZEC(v float64) string {
	return fmt.Sprintf("%.8f ZEC", v)
}

// FormatBytes renders a byte count using binary units, e.g. "243.52 GiB".
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
