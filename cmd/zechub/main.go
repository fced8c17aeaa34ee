// =============================================================================
// FILE: cmd/zechub/main.go
// ROLE: Entry point: interactive console plus one-shot subcommands
// =============================================================================
//
// SYSTEM CONTEXT
// ==============
// `zechub` with no arguments opens the interactive menu against a local
// Zebra node. Every menu entry is also reachable as a subcommand so it can
// be scripted:
//
//   zechub                      ← interactive menu
//   zechub supply               ← chain supply by value pool
//   zechub supply-at 2726400    ← supply recorded at one block
//   zechub tx-date <txid>       ← when a transaction was mined
//
// EXECUTION FLOW
// ==============
//
//   main()
//    └─ rootCmd().Execute()
//         │
//         ├─ config.LoadEnv()              ← .env into the environment
//         ├─ loadConfig(cmd)               ← YAML, then flag overrides
//         ├─ slog.Init(level, file)        ← zap logger
//         ├─ commands.Open(ctx, cfg, ...)  ← cookie → client → getinfo probe
//         └─ Router.Run(ctx)               ← select / prompt / run / repeat
//
// Ctrl+C while a request is in flight cancels the context; the router then
// returns and the process exits 0 like a normal Exit. Inside the menu widget
// Ctrl+C is read as an aborted selection and has the same effect.
//
// EXIT CODES
// ==========
//   0  menu Exit, aborted menu, or a successful subcommand
//   1  configuration or credential failure, unreachable node, or a failing
//      subcommand
// =============================================================================

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmagro/zechub-cli/internal/commands"
	"github.com/dmagro/zechub-cli/internal/config"
	"github.com/dmagro/zechub-cli/internal/menu"
	"github.com/dmagro/zechub-cli/internal/slog"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zechub",
		Short: "Interactive console for a Zebra node's JSON-RPC",
		Long: `Query a Zebra (or zcashd) node over JSON-RPC: supply by value pool,
blocks, transactions, mempool and peers.

Credentials come from the node's cookie file (~/.cache/zebra/.cookie) when it
exists, otherwise from --user/--password or the config file.

Examples:
  zechub
  zechub supply --report
  zechub block-date 419200
  zechub --url http://10.0.0.5 --port 18232 peers`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file path (default "+config.DefaultPath+" if present)")
	flags.String("url", "", "Node URL, scheme and host (e.g. http://127.0.0.1)")
	flags.Int("port", 0, "Node RPC port")
	flags.String("user", "", "RPC username when no cookie is used")
	flags.String("password", "", "RPC password when no cookie is used")
	flags.String("cookie", "", `Cookie file path ("" disables cookie auth)`)
	flags.Duration("timeout", 0, "Per-request timeout (0 = none)")
	flags.String("log-level", "", "Log level: debug|info|warn|error")
	flags.String("log-file", "", "Write logs to this file instead of stderr")
	flags.Bool("report", false, "Write a report for structured results")
	flags.String("report-format", "", "Report format: json|csv")

	for _, op := range commands.Catalogue() {
		cmd.AddCommand(opCmd(op))
	}

	return cmd
}

func runInteractive(cmd *cobra.Command) error {
	cfg, report, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	session, err := commands.Open(ctx, cfg, cmd.OutOrStdout(), commands.Options{Probe: true, Report: report})
	if err != nil {
		return err
	}
	defer session.Close()

	router := &commands.Router{
		Session:  session,
		Ops:      commands.Catalogue(),
		Selector: &menu.Terminal{},
		Prompter: &menu.Terminal{},
		Clear:    true,
	}
	return router.Run(ctx)
}

// setup loads .env and configuration and initializes logging.
func setup(cmd *cobra.Command) (*config.Config, bool, error) {
	config.LoadEnv()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, false, err
	}
	if err := slog.Init(cfg.Defaults.LogLevel, cfg.Defaults.LogFile); err != nil {
		return nil, false, err
	}

	report, _ := cmd.Flags().GetBool("report")
	return cfg, report, nil
}

// loadConfig reads the config file and applies any flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.LoadOrDefault(config.DefaultPath)
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flags.Changed("url") {
		cfg.Node.URL, _ = flags.GetString("url")
	}
	if flags.Changed("port") {
		cfg.Node.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("user") {
		cfg.Node.Username, _ = flags.GetString("user")
	}
	if flags.Changed("password") {
		cfg.Node.Password, _ = flags.GetString("password")
	}
	if flags.Changed("cookie") {
		cfg.Node.CookieFile, _ = flags.GetString("cookie")
	}
	if flags.Changed("timeout") {
		cfg.Defaults.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("log-level") {
		cfg.Defaults.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.Defaults.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("report-format") {
		cfg.Defaults.ReportFormat, _ = flags.GetString("report-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			fmt.Fprintf(os.Stderr, "\nReceived signal: %v\n", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
