// Package config provides YAML configuration file loading and validation.
// It handles environment variable expansion, default values, and the
// checks that run before a node connection is opened.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. Its absence is not an
// error.
const DefaultPath = "config/zechub.yaml"

// Config represents the root configuration structure loaded from YAML.
type Config struct {
	Node     Node     `yaml:"node"`
	Defaults Defaults `yaml:"defaults"`
}

// Node describes how to reach and authenticate to the node.
type Node struct {
	URL        string `yaml:"url"`         // scheme and host, supports ${VAR}
	Port       int    `yaml:"port"`        // RPC port, 8232 on mainnet
	Username   string `yaml:"username"`    // used when no cookie is found
	Password   string `yaml:"password"`    // used when no cookie is found
	CookieFile string `yaml:"cookie_file"` // "" disables cookie auth
}

// Defaults holds session-wide settings.
type Defaults struct {
	Timeout      time.Duration `yaml:"timeout"` // 0 = no client timeout
	LogLevel     string        `yaml:"log_level"`
	LogFile      string        `yaml:"log_file"` // "" = stderr
	ReportDir    string        `yaml:"report_dir"`
	ReportFormat string        `yaml:"report_format"` // json or csv
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Node: Node{
			URL:        "http://127.0.0.1",
			Port:       8232,
			CookieFile: "~/.cache/zebra/.cookie",
		},
		Defaults: Defaults{
			LogLevel:     "warn",
			ReportDir:    "reports",
			ReportFormat: "json",
		},
	}
}

// Validate checks the configuration. It may emit warnings (to stderr) for
// suspicious values but does not fail on warnings.
func (c *Config) Validate() error {
	if c.Node.URL == "" {
		return fmt.Errorf("node.url is required")
	}
	u, err := url.Parse(c.Node.URL)
	if err != nil {
		return fmt.Errorf("node.url: invalid url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("node.url: invalid url (missing scheme or host)")
	}
	if u.Scheme != "http" {
		return fmt.Errorf("node.url: invalid url scheme %q (expected http)", u.Scheme)
	}
	if u.Port() != "" {
		return fmt.Errorf("node.url: put the port in node.port, not the url")
	}
	if c.Node.Port <= 0 || c.Node.Port > 65535 {
		return fmt.Errorf("node.port must be between 1 and 65535")
	}
	if c.Defaults.Timeout < 0 {
		return fmt.Errorf("defaults.timeout must be >= 0")
	}
	switch c.Defaults.ReportFormat {
	case "json", "csv":
	default:
		return fmt.Errorf("defaults.report_format must be json or csv, got %q", c.Defaults.ReportFormat)
	}

	const low = 500 * time.Millisecond
	const high = 2 * time.Minute
	if d := c.Defaults.Timeout; d > 0 && d < low {
		fmt.Fprintf(os.Stderr, "Warning: timeout is very low (%s); getblock on large blocks may fail\n", d)
	}
	if d := c.Defaults.Timeout; d > high {
		fmt.Fprintf(os.Stderr, "Warning: timeout is very high (%s); a stalled node will block the console that long\n", d)
	}
	if c.Node.CookieFile == "" && c.Node.Username == "" {
		fmt.Fprintln(os.Stderr, "Warning: cookie auth disabled and no username set; the node may reject requests")
	}

	return nil
}

// Load reads and parses a YAML configuration file, expanding ${VAR}
// references with os.ExpandEnv. Keys missing from the file keep their
// Default() value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to Default() when the file does not
// exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadEnv reads KEY=VALUE lines from a .env file in the current working
// directory and sets them with os.Setenv. A missing file is ignored. Blank
// lines and # comments are skipped; surrounding quotes are stripped.
func LoadEnv() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		os.Setenv(strings.TrimSpace(key), strings.Trim(strings.TrimSpace(value), `"'`))
	}
}
