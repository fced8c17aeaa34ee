package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/dmagro/zechub-cli/internal/config"
	"github.com/dmagro/zechub-cli/internal/display"
	"github.com/dmagro/zechub-cli/internal/query"
	"github.com/dmagro/zechub-cli/internal/report"
	"github.com/dmagro/zechub-cli/internal/rpc"
	"github.com/dmagro/zechub-cli/internal/slog"
)

// Options control how a Session is opened.
type Options struct {
	Probe  bool // run the getinfo connection check
	Report bool // write a report for structured operations
}

// Session is everything an operation needs: the client for the one node
// connection, the output stream and report settings. It is built once and
// only read afterwards.
type Session struct {
	client *rpc.Client
	out    io.Writer
	logger *zap.SugaredLogger

	report       bool
	reportDir    string
	reportFormat string

	now func() time.Time
}

// Open resolves credentials, builds the client and optionally probes the
// node. A cookie that cannot be read aborts before any request is sent.
func Open(ctx context.Context, cfg *config.Config, out io.Writer, opts Options) (*Session, error) {
	logger := slog.Get()

	creds := rpc.Credentials{Username: cfg.Node.Username, Password: cfg.Node.Password}
	if cfg.Node.CookieFile != "" {
		resolved, err := rpc.ResolveCookie(cfg.Node.CookieFile, creds)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve node credentials: %w", err)
		}
		creds = resolved
	}

	conn := rpc.Connection{Credentials: creds, URL: cfg.Node.URL, Port: cfg.Node.Port}
	logger.Infow("session opened", "node", conn.Address(), "user", conn.Username, "timeout", cfg.Defaults.Timeout)

	s := &Session{
		client:       rpc.NewClient(conn, cfg.Defaults.Timeout),
		out:          out,
		logger:       logger,
		report:       opts.Report,
		reportDir:    cfg.Defaults.ReportDir,
		reportFormat: cfg.Defaults.ReportFormat,
		now:          time.Now,
	}

	if opts.Probe {
		if err := s.probe(ctx); err != nil {
			s.Close()
			return nil, err
		}
	}
	return s, nil
}

// Close releases the session's idle connections and flushes the logger.
func (s *Session) Close() {
	s.client.Close()
	_ = slog.Sync()
}

// Out is the writer operations render to.
func (s *Session) Out() io.Writer { return s.out }

// Node is the host:port of the connected node.
func (s *Session) Node() string { return s.client.Connection().Address() }

func (s *Session) probe(ctx context.Context) error {
	env, err := s.client.GetInfo(ctx)
	if err != nil {
		_ = display.Render(s.out, &display.ProbeFormatter{Address: s.Node()})
		return fmt.Errorf("could not connect to node: %w", err)
	}
	if statusErr := env.CheckStatus(); statusErr != nil {
		s.logger.Warnf("connection probe: %v", statusErr)
	}
	return display.Render(s.out, &display.ProbeFormatter{Address: s.Node(), StatusCode: env.StatusCode})
}

// call runs one RPC and prints the per-call summary.
func (s *Session) call(ctx context.Context, fn func(context.Context) (*rpc.Envelope, error)) (*rpc.Envelope, error) {
	env, err := fn(ctx)
	if err != nil {
		return nil, err
	}

	summary := &display.SummaryFormatter{
		Method:     env.Method,
		StatusCode: env.StatusCode,
		Bytes:      len(env.Body),
	}
	if rpcErr := env.RPCError(); rpcErr != nil {
		summary.RPCError = rpcErr
	}
	if err := display.Render(s.out, summary); err != nil {
		return nil, err
	}
	return env, nil
}

// result projects .result out of env and returns it as JSON ready for a
// strict decoder. A null result is reported with the node's error, if any.
func (s *Session) result(env *rpc.Envelope) ([]byte, error) {
	p, err := query.Project(env.Body, query.Result)
	if err != nil {
		return nil, err
	}
	b, err := p.Single()
	if err != nil {
		if rpcErr := env.RPCError(); rpcErr != nil {
			return nil, fmt.Errorf("%w: %s: %v", query.ErrProjection, env.Method, rpcErr)
		}
		return nil, err
	}
	return b, nil
}

// writeReport stores a structured result when reports are enabled.
func (s *Session) writeReport(op, arg string, result, rows any) error {
	if !s.report {
		return nil
	}
	rep := &report.Report{
		Timestamp: s.now().UTC(),
		Operation: op,
		Node:      s.Node(),
		Argument:  arg,
		Result:    result,
	}
	path, err := report.Write(s.reportDir, s.reportFormat, op, rep, rows)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	s.logger.Infow("report written", "operation", op, "path", path)
	return display.Render(s.out, &display.ReportFormatter{Path: path})
}
