// Package report writes the structured result of an operation to a
// timestamped file, as JSON or as CSV rows, so figures can be tracked over
// time.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
)

// Report is the JSON document written for one operation.
type Report struct {
	Timestamp time.Time `json:"timestamp"`
	Operation string    `json:"operation"`
	Node      string    `json:"node"`
	Argument  string    `json:"argument,omitempty"`
	Result    any       `json:"result"`
}

// Write stores rep as JSON, or rows as CSV when format is "csv". rows must
// be a slice of structs with csv tags.
func Write(dir, format, prefix string, rep *Report, rows any) (string, error) {
	if format == "csv" {
		return WriteCSV(dir, rows, prefix)
	}
	return WriteJSON(dir, rep, prefix)
}

// WriteJSON writes data to {dir}/{prefix}-{YYYYMMDD-HHMMSS}.json with
// two-space indentation and returns the path.
func WriteJSON(dir string, data any, prefix string) (string, error) {
	file, path, err := create(dir, prefix, "json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}

	return path, nil
}

// WriteCSV writes rows to {dir}/{prefix}-{YYYYMMDD-HHMMSS}.csv with a header
// line taken from the csv struct tags.
func WriteCSV(dir string, rows any, prefix string) (string, error) {
	file, path, err := create(dir, prefix, "csv")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return "", fmt.Errorf("failed to encode CSV: %w", err)
	}

	return path, nil
}

func create(dir, prefix, ext string) (*os.File, string, error) {
	if prefix == "" {
		prefix = "report"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	ts := time.Now().UTC().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.%s", prefix, ts, ext))

	file, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create report file: %w", err)
	}
	return file, path, nil
}
