package rpc

import "context"

// Method names in the fixed catalogue.
const (
	MethodGetInfo           = "getinfo"
	MethodGetBlockchainInfo = "getblockchaininfo"
	MethodGetRawMempool     = "getrawmempool"
	MethodGetRawTransaction = "getrawtransaction"
	MethodGetBlock          = "getblock"
	MethodGetPeerInfo       = "getpeerinfo"
)

// verbose is the verbosity argument passed to getblock and getrawtransaction.
const verbose = 1

// GetInfo calls getinfo. It is used as the connection probe.
func (c *Client) GetInfo(ctx context.Context) (*Envelope, error) {
	return c.Call(ctx, MethodGetInfo)
}

// GetBlockchainInfo calls getblockchaininfo.
func (c *Client) GetBlockchainInfo(ctx context.Context) (*Envelope, error) {
	return c.Call(ctx, MethodGetBlockchainInfo)
}

// GetRawMempool calls getrawmempool in verbose mode.
func (c *Client) GetRawMempool(ctx context.Context) (*Envelope, error) {
	return c.Call(ctx, MethodGetRawMempool, true)
}

// GetBlock calls getblock with verbosity 1. block is forwarded verbatim and
// may be a height or a hash.
func (c *Client) GetBlock(ctx context.Context, block string) (*Envelope, error) {
	return c.Call(ctx, MethodGetBlock, block, verbose)
}

// GetRawTransaction calls getrawtransaction with verbose output.
func (c *Client) GetRawTransaction(ctx context.Context, txid string) (*Envelope, error) {
	return c.Call(ctx, MethodGetRawTransaction, txid, verbose)
}

// GetPeerInfo calls getpeerinfo.
func (c *Client) GetPeerInfo(ctx context.Context) (*Envelope, error) {
	return c.Call(ctx, MethodGetPeerInfo)
}
