package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmagro/zechub-cli/internal/commands"
)

// opCmd exposes one menu operation as a subcommand. Operations that prompt
// for a block or txid in the menu take it as their single argument here.
func opCmd(op commands.Operation) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op.Name,
		Short: op.Short,
		Long:  op.Label + ": " + op.Short + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, report, err := setup(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			session, err := commands.Open(ctx, cfg, cmd.OutOrStdout(), commands.Options{Report: report})
			if err != nil {
				return err
			}
			defer session.Close()

			var arg string
			if len(args) > 0 {
				arg = strings.TrimSpace(args[0])
			}
			return op.Run(ctx, session, arg)
		},
	}

	if op.TakesArg() {
		cmd.Args = cobra.ExactArgs(1)
		if strings.Contains(op.Prompt, "txid") {
			cmd.Use = op.Name + " <txid>"
		} else {
			cmd.Use = op.Name + " <height|hash>"
		}
	}
	return cmd
}
