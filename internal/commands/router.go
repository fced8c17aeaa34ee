package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmagro/zechub-cli/internal/display"
	"github.com/dmagro/zechub-cli/internal/menu"
)

// MenuTitle is shown above the selection list.
const MenuTitle = "Zechub"

// Router runs the interactive loop: select, optionally prompt, run, repeat.
type Router struct {
	Session  *Session
	Ops      []Operation
	Selector menu.Selector
	Prompter menu.Prompter
	Clear    bool // clear the screen before each operation
}

// Run loops until the operator picks Exit, aborts the selector, or ctx is
// cancelled. Operation failures are reported and the loop continues; Run
// only returns an error for a broken selector.
func (r *Router) Run(ctx context.Context) error {
	labels := MenuLabels(r.Ops)
	log := r.Session.logger

	for {
		if ctx.Err() != nil {
			return nil
		}

		idx, err := r.Selector.Select(MenuTitle, labels)
		if errors.Is(err, menu.ErrAborted) {
			log.Info("menu aborted by operator")
			return nil
		}
		if err != nil {
			return fmt.Errorf("menu failed: %w", err)
		}
		if idx < 0 || idx >= len(labels) {
			log.Warnf("menu returned out-of-range index %d", idx)
			continue
		}
		if idx == len(r.Ops) {
			log.Info("exit selected")
			return nil
		}

		op := r.Ops[idx]
		if r.Clear {
			display.Clear(r.Session.out)
		}
		if err := r.dispatch(ctx, op); err != nil {
			if errors.Is(err, menu.ErrAborted) {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			log.Errorw("operation failed", "operation", op.Name, "error", err)
			_ = display.Render(r.Session.out, &display.ErrorFormatter{Operation: op.Label, Err: err})
		}
	}
}

func (r *Router) dispatch(ctx context.Context, op Operation) error {
	var arg string
	if op.TakesArg() {
		text, err := r.Prompter.Prompt(op.Prompt)
		if err != nil {
			return err
		}
		arg = strings.TrimSpace(text)
	}
	r.Session.logger.Debugw("running operation", "operation", op.Name, "arg", arg)
	return op.Run(ctx, r.Session, arg)
}
