package rpc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmagro/zechub-cli/internal/slog"
)

// DefaultCookiePath is where zebrad writes its RPC cookie.
const DefaultCookiePath = "~/.cache/zebra/.cookie"

// ResolveCookie reads the node's cookie file and returns cookie credentials.
// Everything after the first colon, trimmed, is the secret. A readable file
// without a colon leaves fallback untouched.
func ResolveCookie(path string, fallback Credentials) (Credentials, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return fallback, fmt.Errorf("%w: %v", ErrCredentialUnavailable, err)
	}

	b, err := os.ReadFile(expanded)
	if err != nil {
		return fallback, fmt.Errorf("%w: %v", ErrCredentialUnavailable, err)
	}

	_, secret, found := strings.Cut(string(b), ":")
	if !found {
		slog.Get().Warnf("cookie file %s has no separator, using configured credentials", expanded)
		return fallback, nil
	}

	return Credentials{
		Username: CookieUsername,
		Password: strings.TrimSpace(secret),
	}, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("no home directory found: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
