package commands

import (
	"context"

	"github.com/dmagro/zechub-cli/internal/display"
	"github.com/dmagro/zechub-cli/internal/query"
	"github.com/dmagro/zechub-cli/internal/rpc"
)

// VisualizeMempool prints the verbose mempool and its transaction count.
func VisualizeMempool(ctx context.Context, s *Session, _ string) error {
	env, err := s.call(ctx, s.client.GetRawMempool)
	if err != nil {
		return err
	}
	text, err := s.pretty(env)
	if err != nil {
		return err
	}

	p, err := query.Project(env.Body, query.ResultLength)
	if err != nil {
		return err
	}
	n, err := p.Int()
	if err != nil {
		return err
	}

	return display.Render(s.out, &display.TextFormatter{Text: text, Count: n, Noun: "transactions in the mempool"})
}

// BlockchainDetail prints getblockchaininfo.
func BlockchainDetail(ctx context.Context, s *Session, _ string) error {
	env, err := s.call(ctx, s.client.GetBlockchainInfo)
	if err != nil {
		return err
	}
	text, err := s.pretty(env)
	if err != nil {
		return err
	}
	return display.Render(s.out, &display.TextFormatter{Text: text})
}

// PeerDetails prints the address of every connected peer.
func PeerDetails(ctx context.Context, s *Session, _ string) error {
	env, err := s.call(ctx, s.client.GetPeerInfo)
	if err != nil {
		return err
	}
	return s.printProjection(env, query.PeerAddrs, "", "peers")
}

// printProjection validates the result member and prints filter's output
// with a count line.
func (s *Session) printProjection(env *rpc.Envelope, filter, title, noun string) error {
	if _, err := s.result(env); err != nil {
		return err
	}
	p, err := query.Project(env.Body, filter)
	if err != nil {
		return err
	}
	return display.Render(s.out, &display.TextFormatter{Title: title, Text: p.Pretty(), Count: p.Len(), Noun: noun})
}

// pretty returns the indented .result of env.
func (s *Session) pretty(env *rpc.Envelope) (string, error) {
	if _, err := s.result(env); err != nil {
		return "", err
	}
	p, err := query.Project(env.Body, query.Result)
	if err != nil {
		return "", err
	}
	return p.Pretty(), nil
}
