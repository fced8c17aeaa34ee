package commands

import (
	"context"
	"strings"
	"time"

	"github.com/dmagro/zechub-cli/internal/chain"
	"github.com/dmagro/zechub-cli/internal/display"
	"github.com/dmagro/zechub-cli/internal/rpc"
	"github.com/dmagro/zechub-cli/internal/slog"
)

type txTypeRow struct {
	TxID  string `csv:"txid"`
	Kind  string `csv:"kind"`
	Pools string `csv:"pools"`
}

func (s *Session) getTx(ctx context.Context, txid string) (*rpc.Envelope, error) {
	return s.call(ctx, func(ctx context.Context) (*rpc.Envelope, error) {
		return s.client.GetRawTransaction(ctx, txid)
	})
}

func (s *Session) fetchTx(ctx context.Context, txid string) (*chain.Transaction, error) {
	env, err := s.getTx(ctx, txid)
	if err != nil {
		return nil, err
	}
	data, err := s.result(env)
	if err != nil {
		return nil, err
	}
	tx, err := chain.DecodeTransaction(data)
	if err != nil {
		return nil, err
	}
	if tx.TxID == "" {
		tx.TxID = txid
	}
	slog.Dump("transaction", tx)
	return tx, nil
}

// TransactionDetail prints a verbose getrawtransaction.
func TransactionDetail(ctx context.Context, s *Session, txid string) error {
	env, err := s.getTx(ctx, txid)
	if err != nil {
		return err
	}
	text, err := s.pretty(env)
	if err != nil {
		return err
	}
	return display.Render(s.out, &display.TextFormatter{Text: text})
}

// TransactionType classifies a transaction by the pools it moves value
// between.
func TransactionType(ctx context.Context, s *Session, txid string) error {
	tx, err := s.fetchTx(ctx, txid)
	if err != nil {
		return err
	}
	c, err := chain.Classify(tx)
	if err != nil {
		return err
	}

	if err := display.Render(s.out, &display.TxTypeFormatter{Classification: c}); err != nil {
		return err
	}
	row := txTypeRow{TxID: c.TxID, Kind: string(c.Kind), Pools: strings.Join(c.Pools, " ")}
	return s.writeReport("tx-type", txid, c, []txTypeRow{row})
}

// TransactionDate prints when a transaction was mined. When the
// transaction carries no time of its own, the containing block is fetched.
func TransactionDate(ctx context.Context, s *Session, txid string) error {
	tx, err := s.fetchTx(ctx, txid)
	if err != nil {
		return err
	}

	ts, ok := tx.Timestamp()
	if !ok && tx.Mined() {
		if ref := tx.BlockRef(); ref != "" {
			b, err := s.fetchBlock(ctx, ref)
			if err != nil {
				return err
			}
			ts = b.Time
		}
	}

	subject := "Transaction " + shortID(tx.TxID)
	if err := display.Render(s.out, &display.DateFormatter{Subject: subject, Timestamp: ts, Now: s.now()}); err != nil {
		return err
	}
	rec := newDateRecord(tx.TxID, ts)
	return s.writeReport("tx-date", txid, rec, []DateRecord{rec})
}

// shortID abbreviates a 64-character id for headings.
func shortID(id string) string {
	if len(id) <= 16 {
		return id
	}
	return id[:8] + "…" + id[len(id)-8:]
}

func unixUTC(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
