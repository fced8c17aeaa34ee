package chain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmagro/zechub-cli/internal/supply"
)

func TestDecodeBlock(t *testing.T) {
	body := `{"hash":"0000000001","height":419200,"confirmations":3,"time":1540779337,"size":1620,
		"tx":["aa","bb"],"trees":{"sapling":{"size":5}}}`

	b, err := DecodeBlock([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, &Block{
		Hash:          "0000000001",
		Height:        419200,
		Confirmations: 3,
		Time:          1540779337,
		Size:          1620,
		Tx:            []string{"aa", "bb"},
	}, b)
}

func TestDecodeBlock_ShapeMismatch(t *testing.T) {
	for _, body := range []string{`null`, `"abc"`, `{"height":1}`, `{"hash":"00","height":"1"}`} {
		_, err := DecodeBlock([]byte(body))
		require.Error(t, err, body)
		assert.True(t, errors.Is(err, supply.ErrShapeMismatch), body)
	}
}

func TestClassify_RequiresDecodedFields(t *testing.T) {
	tx, err := DecodeTransaction([]byte(`{"hex":"0400008085202f89","height":5,"confirmations":1}`))
	require.NoError(t, err)
	assert.False(t, tx.Decoded())
	assert.Equal(t, "5", tx.BlockRef())

	_, err = Classify(tx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, supply.ErrShapeMismatch))
}

func TestDecodeTransaction_ShapeMismatch(t *testing.T) {
	_, err := DecodeTransaction([]byte(`{"vin":"none"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, supply.ErrShapeMismatch))
}

func TestTransaction_BlockRef(t *testing.T) {
	unmined := int64(-1)
	assert.Equal(t, "00000abc", (&Transaction{Height: &unmined, BlockHash: "00000abc"}).BlockRef())
	assert.Equal(t, "", (&Transaction{Height: &unmined}).BlockRef())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantKind  TxKind
		wantPools []string
	}{
		{
			name:      "coinbase",
			body:      `{"txid":"c1","vin":[{"coinbase":"03a08601"}],"vout":[{"value":3.125,"n":0}]}`,
			wantKind:  KindCoinbase,
			wantPools: []string{"transparent"},
		},
		{
			name:      "transparent",
			body:      `{"txid":"t1","vin":[{"txid":"aa","vout":0}],"vout":[{"value":1,"n":0}]}`,
			wantKind:  KindTransparent,
			wantPools: []string{"transparent"},
		},
		{
			name:      "fully_shielded_sapling",
			body:      `{"txid":"z1","vin":[],"vout":[],"vShieldedSpend":[{}],"vShieldedOutput":[{},{}]}`,
			wantKind:  KindShielded,
			wantPools: []string{"sapling"},
		},
		{
			name:      "fully_shielded_orchard",
			body:      `{"txid":"z2","vin":[],"vout":[],"orchard":{"actions":[{},{}]}}`,
			wantKind:  KindShielded,
			wantPools: []string{"orchard"},
		},
		{
			name:      "shielding",
			body:      `{"txid":"s1","vin":[{"txid":"aa","vout":1}],"vout":[],"vShieldedOutput":[{}]}`,
			wantKind:  KindShielding,
			wantPools: []string{"transparent", "sapling"},
		},
		{
			name:      "deshielding_sprout",
			body:      `{"txid":"d1","vin":[],"vout":[{"value":2,"n":0}],"vjoinsplit":[{}]}`,
			wantKind:  KindDeshielding,
			wantPools: []string{"transparent", "sprout"},
		},
		{
			name:      "mixed",
			body:      `{"txid":"m1","vin":[{"txid":"aa"}],"vout":[{"value":1}],"orchard":{"actions":[{}]}}`,
			wantKind:  KindMixed,
			wantPools: []string{"transparent", "orchard"},
		},
		{
			name:      "empty_orchard_bundle",
			body:      `{"txid":"t2","vin":[{"txid":"aa"}],"vout":[{"value":1}],"orchard":{"actions":[]}}`,
			wantKind:  KindTransparent,
			wantPools: []string{"transparent"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := DecodeTransaction([]byte(tt.body))
			require.NoError(t, err)

			c, err := Classify(tx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, c.Kind)
			assert.Equal(t, tt.wantPools, c.Pools)
			assert.Equal(t, tx.TxID, c.TxID)
			assert.NotEmpty(t, c.Kind.Describe())
		})
	}
}

func TestTransaction_Timestamp(t *testing.T) {
	height := int64(10)
	unmined := int64(-1)

	tests := []struct {
		name      string
		tx        Transaction
		wantTS    int64
		wantOK    bool
		wantMined bool
	}{
		{name: "blocktime", tx: Transaction{BlockTime: 200, Time: 100, Height: &height}, wantTS: 200, wantOK: true, wantMined: true},
		{name: "time_only", tx: Transaction{Time: 100, Confirmations: 2}, wantTS: 100, wantOK: true, wantMined: true},
		{name: "height_only", tx: Transaction{Height: &height}, wantMined: true},
		{name: "mempool", tx: Transaction{Height: &unmined}},
		{name: "nothing", tx: Transaction{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, ok := tt.tx.Timestamp()
			assert.Equal(t, tt.wantTS, ts)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMined, tt.tx.Mined())
		})
	}
}
