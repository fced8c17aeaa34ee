package commands

import (
	"context"
	"fmt"

	"github.com/dmagro/zechub-cli/internal/chain"
	"github.com/dmagro/zechub-cli/internal/display"
	"github.com/dmagro/zechub-cli/internal/query"
	"github.com/dmagro/zechub-cli/internal/rpc"
	"github.com/dmagro/zechub-cli/internal/supply"
)

// DateRecord is the report row for the date operations.
type DateRecord struct {
	Subject   string `json:"subject" csv:"subject"`
	Timestamp int64  `json:"timestamp" csv:"timestamp"`
	UTC       string `json:"utc,omitempty" csv:"utc"`
	Confirmed bool   `json:"confirmed" csv:"confirmed"`
}

func newDateRecord(subject string, ts int64) DateRecord {
	r := DateRecord{Subject: subject, Timestamp: ts, Confirmed: ts != 0}
	if ts != 0 {
		r.UTC = unixUTC(ts)
	}
	return r
}

func (s *Session) getBlock(ctx context.Context, block string) (*rpc.Envelope, error) {
	return s.call(ctx, func(ctx context.Context) (*rpc.Envelope, error) {
		return s.client.GetBlock(ctx, block)
	})
}

// BlockDetail prints a verbose getblock.
func BlockDetail(ctx context.Context, s *Session, block string) error {
	env, err := s.getBlock(ctx, block)
	if err != nil {
		return err
	}
	text, err := s.pretty(env)
	if err != nil {
		return err
	}
	return display.Render(s.out, &display.TextFormatter{Text: text})
}

// ListTransactions prints a block's txids, newest first.
func ListTransactions(ctx context.Context, s *Session, block string) error {
	env, err := s.getBlock(ctx, block)
	if err != nil {
		return err
	}
	return s.printProjection(env, query.BlockTxsNewest, "Transactions in block "+block, "transactions")
}

// BlockDate prints when a block was mined.
func BlockDate(ctx context.Context, s *Session, block string) error {
	b, err := s.fetchBlock(ctx, block)
	if err != nil {
		return err
	}
	if b.Time == 0 {
		return fmt.Errorf("%w: block %s: no time field", supply.ErrShapeMismatch, block)
	}

	subject := fmt.Sprintf("Block %d", b.Height)
	if err := display.Render(s.out, &display.DateFormatter{Subject: subject, Timestamp: b.Time, Now: s.now()}); err != nil {
		return err
	}
	rec := newDateRecord(subject, b.Time)
	return s.writeReport("block-date", block, rec, []DateRecord{rec})
}

func (s *Session) fetchBlock(ctx context.Context, block string) (*chain.Block, error) {
	env, err := s.getBlock(ctx, block)
	if err != nil {
		return nil, err
	}
	data, err := s.result(env)
	if err != nil {
		return nil, err
	}
	return chain.DecodeBlock(data)
}
