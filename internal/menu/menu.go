// Package menu adapts promptui to the two interactions the console needs:
// choosing one entry from a list and reading one line of text.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrAborted means the operator pressed Ctrl-C or closed stdin.
var ErrAborted = errors.New("input aborted")

// Selector returns the index of the chosen label.
type Selector interface {
	Select(label string, items []string) (int, error)
}

// Prompter returns one line of free text.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Terminal implements Selector and Prompter with promptui. Nil streams mean
// the process's stdin and stdout.
type Terminal struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (t *Terminal) Select(label string, items []string) (int, error) {
	sel := promptui.Select{
		Label:        label,
		Items:        items,
		Size:         len(items),
		HideSelected: true,
		Stdin:        t.Stdin,
		Stdout:       t.Stdout,
	}
	idx, _, err := sel.Run()
	if err != nil {
		return -1, translate(err)
	}
	return idx, nil
}

func (t *Terminal) Prompt(label string) (string, error) {
	p := promptui.Prompt{
		Label:  label,
		Stdin:  t.Stdin,
		Stdout: t.Stdout,
	}
	text, err := p.Run()
	if err != nil {
		return "", translate(err)
	}
	return strings.TrimSpace(text), nil
}

func translate(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrAborted, err)
	}
	return err
}
