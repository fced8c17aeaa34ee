package commands

import (
	"context"

	"github.com/dmagro/zechub-cli/internal/display"
	"github.com/dmagro/zechub-cli/internal/rpc"
	"github.com/dmagro/zechub-cli/internal/slog"
	"github.com/dmagro/zechub-cli/internal/supply"
)

// SupplyInfo shows the chain-wide supply by value pool.
func SupplyInfo(ctx context.Context, s *Session, _ string) error {
	env, err := s.call(ctx, s.client.GetBlockchainInfo)
	if err != nil {
		return err
	}
	b, err := s.result(env)
	if err != nil {
		return err
	}

	info, err := supply.DecodeChainInfo(b)
	if err != nil {
		return err
	}
	slog.Dump("chain info", info)

	cs, err := supply.ExtractChainSupply(info)
	if err != nil {
		return err
	}

	if err := display.Render(s.out, &display.ChainSupplyFormatter{Supply: cs}); err != nil {
		return err
	}
	return s.writeReport("supply", "", cs, []supply.ChainSupply{cs})
}

// SupplyAtBlock shows the value pools recorded at one block.
func SupplyAtBlock(ctx context.Context, s *Session, block string) error {
	env, err := s.call(ctx, func(ctx context.Context) (*rpc.Envelope, error) {
		return s.client.GetBlock(ctx, block)
	})
	if err != nil {
		return err
	}
	b, err := s.result(env)
	if err != nil {
		return err
	}

	info, err := supply.DecodeBlockSupplyInfo(b)
	if err != nil {
		return err
	}
	slog.Dump("block supply info", info)

	bs, err := supply.ExtractBlockSupply(info)
	if err != nil {
		return err
	}

	if err := display.Render(s.out, &display.BlockSupplyFormatter{Supply: bs}); err != nil {
		return err
	}
	return s.writeReport("supply-at", block, bs, []supply.BlockSupply{bs})
}
