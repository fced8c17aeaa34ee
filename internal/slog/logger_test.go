package slog

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{in: "", want: zapcore.WarnLevel},
		{in: "debug", want: zapcore.DebugLevel},
		{in: " INFO ", want: zapcore.InfoLevel},
		{in: "warning", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "verbose", want: zapcore.WarnLevel, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInit_EnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	if err := Init("error", ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !Get().Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("LOG_LEVEL=debug did not enable debug logging")
	}
}

func TestInit_BadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	if err := Init("", ""); err == nil {
		t.Error("Init() accepted an unknown level")
	}
}

func TestInit_LogFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	path := filepath.Join(t.TempDir(), "zechub.log")

	if err := Init("", path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Get().Infow("probe", "method", "getinfo")
	_ = Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
