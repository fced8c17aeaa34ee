package chain

import (
	"fmt"

	"github.com/dmagro/zechub-cli/internal/supply"
)

// TxKind describes how value moves between the transparent and shielded
// pools in a transaction.
type TxKind string

const (
	KindCoinbase    TxKind = "coinbase"
	KindTransparent TxKind = "transparent"
	KindShielded    TxKind = "shielded"
	KindShielding   TxKind = "shielding"
	KindDeshielding TxKind = "deshielding"
	KindMixed       TxKind = "mixed"
)

// Describe is the sentence shown to the operator.
func (k TxKind) Describe() string {
	switch k {
	case KindCoinbase:
		return "Coinbase (block reward)"
	case KindTransparent:
		return "Transparent (t-addr to t-addr)"
	case KindShielded:
		return "Fully shielded (z-addr to z-addr)"
	case KindShielding:
		return "Shielding (t-addr to z-addr)"
	case KindDeshielding:
		return "Deshielding (z-addr to t-addr)"
	case KindMixed:
		return "Mixed (transparent and shielded on both sides)"
	}
	return string(k)
}

// Classification is the result of Classify.
type Classification struct {
	TxID  string   `json:"txid"`
	Kind  TxKind   `json:"kind"`
	Pools []string `json:"pools"`
}

// Classify derives the transaction type from its transparent and shielded
// components. The transaction must carry decoded vin and vout.
func Classify(tx *Transaction) (Classification, error) {
	if !tx.Decoded() {
		return Classification{}, fmt.Errorf("%w: transaction %s: missing decoded vin/vout", supply.ErrShapeMismatch, tx.TxID)
	}

	tIn := len(tx.Inputs()) > 0
	tOut := len(tx.Outputs()) > 0
	sprout := len(tx.JoinSplits) > 0
	sapling := len(tx.ShieldedSpends)+len(tx.ShieldedOutputs) > 0
	orchard := tx.OrchardActions() > 0
	shielded := sprout || sapling || orchard

	c := Classification{TxID: tx.TxID, Pools: []string{}}
	if tIn || tOut {
		c.Pools = append(c.Pools, supply.PoolTransparent)
	}
	if sprout {
		c.Pools = append(c.Pools, supply.PoolSprout)
	}
	if sapling {
		c.Pools = append(c.Pools, supply.PoolSapling)
	}
	if orchard {
		c.Pools = append(c.Pools, supply.PoolOrchard)
	}

	switch {
	case tx.IsCoinbase():
		c.Kind = KindCoinbase
	case !shielded:
		c.Kind = KindTransparent
	case !tIn && !tOut:
		c.Kind = KindShielded
	case tIn && !tOut:
		c.Kind = KindShielding
	case !tIn && tOut:
		c.Kind = KindDeshielding
	default:
		c.Kind = KindMixed
	}
	return c, nil
}
