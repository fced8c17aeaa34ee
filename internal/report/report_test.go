package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Height uint64  `csv:"height"`
	Total  float64 `csv:"total"`
}

func TestWriteJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	rep := &Report{
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Operation: "supply",
		Node:      "http://127.0.0.1:8232",
		Result:    map[string]any{"shielded": 590},
	}

	path, err := Write(dir, "json", "supply", rep, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "supply-"))
	assert.Equal(t, ".json", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "supply", got["operation"])
	assert.NotContains(t, got, "argument")
	assert.Equal(t, map[string]any{"shielded": float64(590)}, got["result"])
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(dir, "csv", "", nil, []row{{Height: 100, Total: 1000}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "report-"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "height,total\n100,1000\n", string(data))
}
