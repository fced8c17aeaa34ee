// Package chain decodes verbose block and transaction results and derives
// the block/transaction facts the console shows: dates and transaction type.
package chain

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dmagro/zechub-cli/internal/supply"
)

// Block is the subset of a verbose getblock result used here.
type Block struct {
	Hash          string   `json:"hash"`
	Height        int64    `json:"height"`
	Confirmations int64    `json:"confirmations"`
	Time          int64    `json:"time"`
	Size          int64    `json:"size"`
	Tx            []string `json:"tx"`
}

// Input is a transparent input. Coinbase is set on the block reward input.
type Input struct {
	Coinbase string `json:"coinbase"`
	TxID     string `json:"txid"`
	Vout     int    `json:"vout"`
}

// Output is a transparent output.
type Output struct {
	Value        float64 `json:"value"`
	N            int     `json:"n"`
	ScriptPubKey struct {
		Type      string   `json:"type"`
		Addresses []string `json:"addresses"`
	} `json:"scriptPubKey"`
}

// OrchardBundle carries the orchard actions of a v5 transaction.
type OrchardBundle struct {
	Actions []json.RawMessage `json:"actions"`
}

// Transaction is the subset of a verbose getrawtransaction result used here.
// Vin and Vout are pointers so an absent member can be told apart from an
// empty list.
type Transaction struct {
	TxID            string            `json:"txid"`
	Height          *int64            `json:"height"`
	Confirmations   int64             `json:"confirmations"`
	Time            int64             `json:"time"`
	BlockTime       int64             `json:"blocktime"`
	BlockHash       string            `json:"blockhash"`
	Vin             *[]Input          `json:"vin"`
	Vout            *[]Output         `json:"vout"`
	JoinSplits      []json.RawMessage `json:"vjoinsplit"`
	ShieldedSpends  []json.RawMessage `json:"vShieldedSpend"`
	ShieldedOutputs []json.RawMessage `json:"vShieldedOutput"`
	Orchard         *OrchardBundle    `json:"orchard"`
}

// DecodeBlock decodes the .result of a verbose getblock. Unknown members are
// ignored; hash and height are required.
func DecodeBlock(data []byte) (*Block, error) {
	var raw struct {
		Block
		Hash   *string `json:"hash"`
		Height *int64  `json:"height"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: block: %v", supply.ErrShapeMismatch, err)
	}
	if raw.Hash == nil || raw.Height == nil {
		return nil, fmt.Errorf("%w: block: missing hash or height", supply.ErrShapeMismatch)
	}
	b := raw.Block
	b.Hash, b.Height = *raw.Hash, *raw.Height
	return &b, nil
}

// DecodeTransaction decodes the .result of a verbose getrawtransaction.
// Unknown members are ignored.
func DecodeTransaction(data []byte) (*Transaction, error) {
	var tx Transaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return nil, fmt.Errorf("%w: transaction: %v", supply.ErrShapeMismatch, err)
	}
	return &tx, nil
}

// Decoded reports whether the node returned the vin and vout members. Older
// nodes answer verbose getrawtransaction with only hex, height and
// confirmations.
func (tx *Transaction) Decoded() bool {
	return tx.Vin != nil && tx.Vout != nil
}

// BlockRef returns the height or hash of the containing block, or "" when
// the transaction carries neither.
func (tx *Transaction) BlockRef() string {
	if tx.Height != nil && *tx.Height >= 0 {
		return strconv.FormatInt(*tx.Height, 10)
	}
	return tx.BlockHash
}

// Inputs returns the transparent inputs.
func (tx *Transaction) Inputs() []Input {
	if tx.Vin == nil {
		return nil
	}
	return *tx.Vin
}

// Outputs returns the transparent outputs.
func (tx *Transaction) Outputs() []Output {
	if tx.Vout == nil {
		return nil
	}
	return *tx.Vout
}

// IsCoinbase reports whether the transaction mints the block reward.
func (tx *Transaction) IsCoinbase() bool {
	for _, in := range tx.Inputs() {
		if in.Coinbase != "" {
			return true
		}
	}
	return false
}

// OrchardActions is the number of orchard actions.
func (tx *Transaction) OrchardActions() int {
	if tx.Orchard == nil {
		return 0
	}
	return len(tx.Orchard.Actions)
}

// Mined reports whether the node placed the transaction in a block.
func (tx *Transaction) Mined() bool {
	return tx.BlockHash != "" || tx.Confirmations > 0 || (tx.Height != nil && *tx.Height >= 0)
}

// Timestamp returns the block time carried by the transaction itself, if any.
func (tx *Transaction) Timestamp() (int64, bool) {
	switch {
	case tx.BlockTime > 0:
		return tx.BlockTime, true
	case tx.Time > 0:
		return tx.Time, true
	}
	return 0, false
}
