package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/dmagro/zechub-cli/internal/display"
)

// mnemonicEntropyBits yields a 24-word phrase.
const mnemonicEntropyBits = 256

// DisplayMnemonic prints a fresh 24-word BIP-39 phrase. It talks to no node.
func DisplayMnemonic(_ context.Context, s *Session, _ string) error {
	words, err := NewMnemonic()
	if err != nil {
		return err
	}
	return display.Render(s.out, &display.MnemonicFormatter{Words: words})
}

// NewMnemonic generates a 24-word English mnemonic.
func NewMnemonic() ([]string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return strings.Fields(phrase), nil
}
