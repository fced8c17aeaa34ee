package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zechub.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("ZEBRA_TEST_PASSWORD", "s3cret")

	path := writeConfig(t, `
node:
  url: http://10.0.0.5
  port: 18232
  username: operator
  password: ${ZEBRA_TEST_PASSWORD}
  cookie_file: ""
defaults:
  timeout: 15s
  report_format: csv
`)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		Node: Node{
			URL:      "http://10.0.0.5",
			Port:     18232,
			Username: "operator",
			Password: "s3cret",
		},
		Defaults: Defaults{
			Timeout:      15 * time.Second,
			LogLevel:     "warn",
			ReportDir:    "reports",
			ReportFormat: "csv",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	got, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("LoadOrDefault() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults_ok", mutate: func(*Config) {}},
		{name: "empty_url", mutate: func(c *Config) { c.Node.URL = "" }, wantErr: "node.url is required"},
		{name: "no_scheme", mutate: func(c *Config) { c.Node.URL = "127.0.0.1" }, wantErr: "missing scheme or host"},
		{name: "https", mutate: func(c *Config) { c.Node.URL = "https://node.example" }, wantErr: "expected http"},
		{name: "port_in_url", mutate: func(c *Config) { c.Node.URL = "http://127.0.0.1:8232" }, wantErr: "node.port"},
		{name: "zero_port", mutate: func(c *Config) { c.Node.Port = 0 }, wantErr: "node.port must be"},
		{name: "negative_timeout", mutate: func(c *Config) { c.Defaults.Timeout = -time.Second }, wantErr: "defaults.timeout"},
		{name: "bad_report_format", mutate: func(c *Config) { c.Defaults.ReportFormat = "xml" }, wantErr: "report_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	body := "# node creds\nZEBRA_ENV_USER=operator\nZEBRA_ENV_PASS=\"a=b\"\n\nnot a pair\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ZEBRA_ENV_USER", "")
	t.Setenv("ZEBRA_ENV_PASS", "")

	LoadEnv()

	if got := os.Getenv("ZEBRA_ENV_USER"); got != "operator" {
		t.Errorf("ZEBRA_ENV_USER = %q", got)
	}
	if got := os.Getenv("ZEBRA_ENV_PASS"); got != "a=b" {
		t.Errorf("ZEBRA_ENV_PASS = %q", got)
	}
}
